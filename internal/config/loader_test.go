package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("Expected version '1', got '%s'", cfg.Version)
	}
	if cfg.Store.Backend != "json" {
		t.Errorf("Expected store backend 'json', got '%s'", cfg.Store.Backend)
	}
	if cfg.Store.Path != "" {
		t.Errorf("Expected empty store path, got '%s'", cfg.Store.Path)
	}
	if cfg.View.Format != "auto" {
		t.Errorf("Expected view format 'auto', got '%s'", cfg.View.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestWriteDefaultLoadsBack(t *testing.T) {
	t.Setenv(FileEnv, "")
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if !strings.Contains(string(content), "backend: json") {
		t.Error("Expected 'backend: json' in config")
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Setenv(FileEnv, "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing config, got %v", err)
	}
	if cfg.Store.Backend != "json" {
		t.Errorf("Expected defaults, got backend '%s'", cfg.Store.Backend)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	t.Setenv(FileEnv, "")
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "config.yaml")
	content := `store:
  backend: sqlite
  path: /tmp/tasks.db
view:
  format: days
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Expected backend 'sqlite', got '%s'", cfg.Store.Backend)
	}
	if cfg.Store.Path != "/tmp/tasks.db" {
		t.Errorf("Expected path '/tmp/tasks.db', got '%s'", cfg.Store.Path)
	}
	if cfg.View.Format != "days" {
		t.Errorf("Expected format 'days', got '%s'", cfg.View.Format)
	}
	if cfg.Version != "1" {
		t.Errorf("Expected default version to survive, got '%s'", cfg.Version)
	}
}

func TestLoadFileEnvOverridesPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(FileEnv, filepath.Join(tmpDir, "env.json"))

	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  path: /tmp/config.json\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Store.Path != filepath.Join(tmpDir, "env.json") {
		t.Errorf("Expected env path to win, got '%s'", cfg.Store.Path)
	}

	cfg, err = LoadFile(filepath.Join(tmpDir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Store.Path != filepath.Join(tmpDir, "env.json") {
		t.Errorf("Expected env path without config file, got '%s'", cfg.Store.Path)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	t.Setenv(FileEnv, "")

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "store: [\n"},
		{"unknown backend", "store:\n  backend: csv\n"},
		{"unknown format", "view:\n  format: weeks\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestGlobalConfigPath(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath failed: %v", err)
	}
	want := filepath.Join(configHome, "loago", "config.yaml")
	if path != want {
		t.Errorf("Expected %s, got %s", want, path)
	}
}
