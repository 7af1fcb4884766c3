package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		name TEXT PRIMARY KEY,
		done_at TEXT NOT NULL
	);
`

// SQLiteRepo stores the record in a single-table SQLite database.
type SQLiteRepo struct {
	path string
}

// NewSQLiteRepo creates a SQLite repo at path.
func NewSQLiteRepo(path string) *SQLiteRepo {
	return &SQLiteRepo{path: path}
}

func (r *SQLiteRepo) Path() string {
	return r.path
}

func (r *SQLiteRepo) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, corrupt(r.path, err)
	}
	return db, nil
}

// Load opens the database read-only and never creates the schema, so
// reading leaves the file untouched.
func (r *SQLiteRepo) Load() (map[string]time.Time, error) {
	// sqlite creates missing files on open, so check first.
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return map[string]time.Time{}, nil
	}

	db, err := sql.Open("sqlite3", "file:"+r.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var tables int
	err = db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&tables)
	if err != nil {
		return nil, corrupt(r.path, err)
	}
	if tables == 0 {
		return map[string]time.Time{}, nil
	}

	rows, err := db.Query(`SELECT name, done_at FROM tasks`)
	if err != nil {
		return nil, corrupt(r.path, err)
	}
	defer rows.Close()

	raw := make(map[string]string)
	for rows.Next() {
		var name, doneAt string
		if err := rows.Scan(&name, &doneAt); err != nil {
			return nil, corrupt(r.path, err)
		}
		raw[name] = doneAt
	}
	if err := rows.Err(); err != nil {
		return nil, corrupt(r.path, err)
	}

	return parseRecords(r.path, raw, time.RFC3339Nano)
}

// Save replaces every row in one transaction.
func (r *SQLiteRepo) Save(records map[string]time.Time) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks (name, done_at) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for name, doneAt := range formatRecords(records, time.RFC3339Nano) {
		if _, err := stmt.Exec(name, doneAt); err != nil {
			return fmt.Errorf("failed to save task %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tasks: %w", err)
	}
	return nil
}
