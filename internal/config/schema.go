package config

// Config represents the full loago configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Where and how the task record is stored
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// How elapsed time is reported
	View ViewConfig `yaml:"view" mapstructure:"view"`
}

// StoreConfig selects the record backend
type StoreConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "json", "yaml" or "sqlite"
	Path    string `yaml:"path" mapstructure:"path"`       // Empty uses the backend's default file
}

// ViewConfig holds report settings
type ViewConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "auto", "days", "hours" or "minutes"
}
