// Package config loads application settings.
// Layers, lowest precedence first: built-in defaults, an optional YAML file,
// then CHORES_* environment variables.
package config

// Config holds all configuration for the application.
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Log     LogConfig     `koanf:"log"`
	UI      UIConfig      `koanf:"ui"`
}

// StorageConfig selects where the chore list is persisted.
// An empty Path resolves to a file under the user config directory.
type StorageConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `koanf:"theme"`
}
