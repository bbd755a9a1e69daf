package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceDefault  = "default"
)

// localPath is the project-local config, relative to the working directory.
var localPath = filepath.Join("configs", "puzzles.yaml")

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.puzzles/config.yaml -> ./configs/puzzles.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if p := userConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, p, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), SourceDefault, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzles", "config.yaml")
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every action has a binding and that no key is
// bound to more than one of the direction and quit actions.
func (c Config) Validate() error {
	actions := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"quit", c.Keys.Quit},
	}

	owner := make(map[string]string)
	for _, a := range actions {
		if len(a.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalidConfig, a.name)
		}
		for _, k := range a.keys {
			if k == "" {
				return fmt.Errorf("%w: keys.%s contains an empty key", ErrInvalidConfig, a.name)
			}
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, prev, a.name)
			}
			owner[k] = a.name
		}
	}

	if len(c.Keys.Back) == 0 {
		return fmt.Errorf("%w: keys.back has no bindings", ErrInvalidConfig)
	}
	if c.Scores.Limit <= 0 {
		return fmt.Errorf("%w: scores.limit must be positive, got %d", ErrInvalidConfig, c.Scores.Limit)
	}
	return nil
}
