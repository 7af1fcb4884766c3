package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func assertUnchanged(t *testing.T, path string, before os.FileInfo) {
	t.Helper()

	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat record: %v", err)
	}
	if after.Size() != before.Size() {
		t.Errorf("Expected size %d after load, got %d", before.Size(), after.Size())
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("Expected mod time %v after load, got %v", before.ModTime(), after.ModTime())
	}
}

func TestSQLiteLoadEmptyFileLeavesItUntouched(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "loago.db")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat record: %v", err)
	}

	records, err := NewSQLiteRepo(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %v", records)
	}
	assertUnchanged(t, path, before)
}

func TestSQLiteLoadDoesNotWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "loago.db")
	repo := NewSQLiteRepo(path)
	want := map[string]time.Time{
		"dust": time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat record: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSameRecords(t, want, got)
	assertUnchanged(t, path, before)
}
