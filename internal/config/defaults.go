package config

import (
	"os"

	"github.com/loago/loago/internal/store"
	"github.com/loago/loago/internal/tasks"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			Backend: store.BackendJSON,
		},
		View: ViewConfig{
			Format: tasks.FormatAuto,
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# loago configuration
version: "1"

# Task record
store:
  backend: json  # "json", "yaml" or "sqlite"
  # Record file. Empty uses loago.json / loago.yaml / loago.db next to this file.
  # The LOAGO_FILE environment variable overrides it.
  path: ""

# Report
view:
  # "auto" shows days, falling back to hours (5h) and minutes (12m) within a day.
  # "days", "hours" and "minutes" always use that unit.
  format: auto
`
	return os.WriteFile(path, []byte(content), 0644)
}
