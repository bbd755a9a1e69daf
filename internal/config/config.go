// Package config provides YAML-based configuration loading for the
// puzzles platform: key bindings, theme colors and score storage.
package config

// Config contains all user-tunable settings.
type Config struct {
	Keys   KeysConfig   `yaml:"keys"`
	Theme  ThemeConfig  `yaml:"theme"`
	Scores ScoresConfig `yaml:"scores"`
}

// KeysConfig maps actions to key names as reported by Bubble Tea
// (e.g. "left", "h", "ctrl+c").
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Quit  []string `yaml:"quit"`
	Back  []string `yaml:"back"`
}

// ThemeConfig holds lipgloss color values (ANSI numbers or hex).
type ThemeConfig struct {
	Stats  string `yaml:"stats"`
	Banner string `yaml:"banner"`
	Hint   string `yaml:"hint"`
	Border string `yaml:"border"`
}

// ScoresConfig defines where finished runs are recorded.
type ScoresConfig struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"` // Rows shown on the scoreboard
}
