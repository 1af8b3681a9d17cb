package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const defaultTitle = "Laptop Desk"

// UIConfig holds user-facing page settings.
// Operators can change these without rebuilding.
// Source: TOML configuration file
type UIConfig struct {
	Title string   `toml:"title"`
	Roles []string `toml:"roles"` // suggestions only, any role can be typed
}

// DefaultUIConfig is used when no UI config file is configured.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{Title: defaultTitle}
}

// LoadUIConfig loads page settings from a TOML file. An empty path yields the defaults.
func LoadUIConfig(path string) (*UIConfig, error) {
	cfg := DefaultUIConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load ui config: %w", err)
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	return cfg, nil
}
