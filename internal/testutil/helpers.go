// Package testutil provides reusable test utilities for loago tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home       string // Mocked HOME directory
	ConfigHome string // Mocked XDG_CONFIG_HOME
	LoagoDir   string // <config home>/loago, holds config.yaml and the record
	t          *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME and
// XDG_CONFIG_HOME. Uses t.TempDir() for automatic cleanup and t.Setenv() for
// automatic env restoration, so callers cannot use t.Parallel().
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	configHome := filepath.Join(tmpHome, ".config")
	loagoDir := filepath.Join(configHome, "loago")

	t.Setenv("HOME", tmpHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("LOAGO_FILE", "")

	return &TestEnv{
		Home:       tmpHome,
		ConfigHome: configHome,
		LoagoDir:   loagoDir,
		t:          t,
	}
}

// Path resolves a path relative to the loago directory.
func (e *TestEnv) Path(relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	return filepath.Join(e.LoagoDir, relPath)
}

// CreateFile creates a file with the given content, relative to the loago
// directory unless path is absolute.
func (e *TestEnv) CreateFile(path, content string) {
	e.t.Helper()

	fullPath := e.Path(path)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the test environment.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()

	fullPath := e.Path(path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", fullPath, err)
	}
	return string(data)
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	_, err := os.Stat(e.Path(path))
	return err == nil
}

// RecordPath returns the default JSON record path.
func (e *TestEnv) RecordPath() string {
	return e.Path("loago.json")
}

// ConfigPath returns the config file path.
func (e *TestEnv) ConfigPath() string {
	return e.Path("config.yaml")
}
