// Package store persists the task record between loago invocations.
//
// A record is a flat mapping from task name to the last time the task was
// done. Three backends are available: json (the default, loago.json), yaml
// and sqlite. A missing record loads as an empty mapping. Content that
// cannot be parsed is reported as ErrCorrupt and never partially loaded.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AppName is the directory name used under the user's config directory.
const AppName = "loago"

// Backend names.
const (
	BackendJSON   = "json"
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// ErrCorrupt marks a record that exists but cannot be read back.
var ErrCorrupt = errors.New("corrupt task record")

// Repo loads and saves the task record.
type Repo interface {
	Load() (map[string]time.Time, error)
	Save(records map[string]time.Time) error
	Path() string
}

// Open returns the repo for backend at path. An empty path selects the
// default location for that backend.
func Open(backend, path string) (Repo, error) {
	if backend == "" {
		backend = BackendJSON
	}
	if path == "" {
		var err error
		path, err = DefaultPath(backend)
		if err != nil {
			return nil, err
		}
	}

	switch backend {
	case BackendJSON:
		return NewJSONRepo(path), nil
	case BackendYAML:
		return NewYAMLRepo(path), nil
	case BackendSQLite:
		return NewSQLiteRepo(path), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	switch name {
	case BackendJSON, BackendYAML, BackendSQLite:
		return true
	}
	return false
}

// DefaultDir returns the loago directory under the user's config directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the default record file for backend.
func DefaultPath(backend string) (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	var file string
	switch backend {
	case BackendYAML:
		file = "loago.yaml"
	case BackendSQLite:
		file = "loago.db"
	default:
		file = "loago.json"
	}
	return filepath.Join(dir, file), nil
}

// writeAtomic writes data to a temp file next to path and renames it over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename record: %w", err)
	}

	return nil
}

// readFile returns nil data and no error when path does not exist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return data, nil
}

func corrupt(path string, err error) error {
	return fmt.Errorf("%w %s: %v", ErrCorrupt, path, err)
}

func parseRecords(path string, raw map[string]string, layout string) (map[string]time.Time, error) {
	records := make(map[string]time.Time, len(raw))
	for name, stamp := range raw {
		if name == "" {
			return nil, corrupt(path, errors.New("empty task name"))
		}
		done, err := time.Parse(layout, stamp)
		if err != nil {
			return nil, corrupt(path, fmt.Errorf("task %q: %w", name, err))
		}
		records[name] = done.UTC()
	}
	return records, nil
}

func formatRecords(records map[string]time.Time, layout string) map[string]string {
	raw := make(map[string]string, len(records))
	for name, done := range records {
		raw[name] = done.UTC().Format(layout)
	}
	return raw
}
