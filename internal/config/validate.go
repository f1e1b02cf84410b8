package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Makepad-fr/chores/internal/store"
	"github.com/Makepad-fr/chores/internal/ui"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Storage.validate(),
		c.Log.validate(),
		c.UI.validate(),
	)
}

func (s *StorageConfig) validate() error {
	if slices.Contains(store.Drivers, s.Driver) {
		return nil
	}
	return fmt.Errorf("storage.driver must be one of: %s; got %q", strings.Join(store.Drivers, ", "), s.Driver)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (u *UIConfig) validate() error {
	if slices.Contains(ui.Themes, u.Theme) {
		return nil
	}
	return fmt.Errorf("ui.theme must be one of: %s; got %q", strings.Join(ui.Themes, ", "), u.Theme)
}
