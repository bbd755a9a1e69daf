package config

import (
	_ "embed"
)

//go:embed defaults/puzzles.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/puzzles.yaml.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Left:  []string{"left", "h", "a"},
			Right: []string{"right", "l", "d"},
			Up:    []string{"up", "k", "w"},
			Down:  []string{"down", "j", "s"},
			Quit:  []string{"q", "ctrl+c"},
			Back:  []string{"esc"},
		},
		Theme: ThemeConfig{
			Stats:  "252",
			Banner: "205",
			Hint:   "241",
			Border: "63",
		},
		Scores: ScoresConfig{
			Path:  "~/.puzzles/scores.db",
			Limit: 10,
		},
	}
}
