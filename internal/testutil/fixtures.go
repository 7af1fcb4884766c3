package testutil

import (
	"encoding/json"
	"time"
)

// DaysAgo returns records whose tasks were done the given number of whole
// days before now.
func DaysAgo(now time.Time, days map[string]int) map[string]time.Time {
	records := make(map[string]time.Time, len(days))
	for name, n := range days {
		records[name] = now.Add(-time.Duration(n) * 24 * time.Hour).UTC()
	}
	return records
}

// SampleDays is the household example used across tests.
func SampleDays() map[string]int {
	return map[string]int{
		"bed":      4,
		"floor":    6,
		"keyboard": 8,
		"window":   20,
	}
}

// WriteJSONRecord writes records to the default JSON record file in the
// naive UTC layout loago uses.
func (e *TestEnv) WriteJSONRecord(records map[string]time.Time) {
	e.t.Helper()

	raw := make(map[string]string, len(records))
	for name, done := range records {
		raw[name] = done.UTC().Format("2006-01-02T15:04:05.999999999")
	}
	data, err := json.Marshal(raw)
	if err != nil {
		e.t.Fatalf("Failed to marshal record: %v", err)
	}
	e.CreateFile(e.RecordPath(), string(data))
}

// ReadJSONRecord parses the default JSON record file.
func (e *TestEnv) ReadJSONRecord() map[string]time.Time {
	e.t.Helper()

	var raw map[string]string
	if err := json.Unmarshal([]byte(e.ReadFile(e.RecordPath())), &raw); err != nil {
		e.t.Fatalf("Failed to parse record: %v", err)
	}
	records := make(map[string]time.Time, len(raw))
	for name, stamp := range raw {
		done, err := time.Parse("2006-01-02T15:04:05.999999999", stamp)
		if err != nil {
			e.t.Fatalf("Failed to parse timestamp %q: %v", stamp, err)
		}
		records[name] = done
	}
	return records
}
