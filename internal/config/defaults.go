package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "chores"

// defaults returns the values loaded before any file or env var.
func defaults() map[string]any {
	return map[string]any{
		"storage.driver": "json",
		"storage.path":   "",

		"log.level":  "info",
		"log.format": "json",
		"log.file":   "",

		"ui.theme": "classic",
	}
}

// Dir is the per-user directory for config, data and logs.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// resolvePaths fills empty paths with files under dir.
func (c *Config) resolvePaths(dir string) {
	if c.Storage.Path == "" {
		name := "chores.json"
		if c.Storage.Driver == "sqlite" {
			name = "chores.db"
		}
		c.Storage.Path = filepath.Join(dir, name)
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dir, "chores.log")
	}
}
