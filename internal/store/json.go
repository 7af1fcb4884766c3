package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// jsonLayout is a naive UTC timestamp, e.g. 2023-12-20T08:15:00.123456789.
const jsonLayout = "2006-01-02T15:04:05.999999999"

// JSONRepo stores the record as a JSON object of name to timestamp.
type JSONRepo struct {
	path string
}

// NewJSONRepo creates a JSON repo at path.
func NewJSONRepo(path string) *JSONRepo {
	return &JSONRepo{path: path}
}

func (r *JSONRepo) Path() string {
	return r.path
}

func (r *JSONRepo) Load() (map[string]time.Time, error) {
	data, err := readFile(r.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]time.Time{}, nil
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, corrupt(r.path, err)
	}
	return parseRecords(r.path, raw, jsonLayout)
}

func (r *JSONRepo) Save(records map[string]time.Time) error {
	data, err := json.MarshalIndent(formatRecords(records, jsonLayout), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return writeAtomic(r.path, append(data, '\n'))
}
