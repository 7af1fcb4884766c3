package store

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLRepo stores the record as a YAML mapping of name to RFC 3339 timestamp.
type YAMLRepo struct {
	path string
}

// NewYAMLRepo creates a YAML repo at path.
func NewYAMLRepo(path string) *YAMLRepo {
	return &YAMLRepo{path: path}
}

func (r *YAMLRepo) Path() string {
	return r.path
}

func (r *YAMLRepo) Load() (map[string]time.Time, error) {
	data, err := readFile(r.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]time.Time{}, nil
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, corrupt(r.path, err)
	}
	return parseRecords(r.path, raw, time.RFC3339Nano)
}

func (r *YAMLRepo) Save(records map[string]time.Time) error {
	data, err := yaml.Marshal(formatRecords(records, time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return writeAtomic(r.path, data)
}
