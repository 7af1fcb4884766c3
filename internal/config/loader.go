package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/loago/loago/internal/store"
	"github.com/loago/loago/internal/tasks"
)

// FileEnv overrides store.path when set.
const FileEnv = "LOAGO_FILE"

// Load loads the global configuration on top of the defaults
func Load() (*Config, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if err := v.BindEnv("store.path", FileEnv); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects unknown backends and formats
func (c *Config) Validate() error {
	if !store.ValidBackend(c.Store.Backend) {
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if _, err := tasks.FormatterFor(c.View.Format); err != nil {
		return err
	}
	return nil
}

// GlobalConfigPath returns the path to the config file
func GlobalConfigPath() (string, error) {
	dir, err := store.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
