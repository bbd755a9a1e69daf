package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puzzles/internal/config"
)

// Theme contains the styles for the panels around the board.
type Theme struct {
	Board  lipgloss.Style
	Stats  lipgloss.Style
	Label  lipgloss.Style
	Banner lipgloss.Style
	Hint   lipgloss.Style
	Help   lipgloss.Style
	Title  lipgloss.Style
	Cursor lipgloss.Style
}

// NewTheme builds styles from configured colors.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.Border)).
			Padding(0, 1),
		Stats: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Stats)).
			PaddingLeft(2),
		Label: lipgloss.NewStyle().Bold(true),
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Banner)),
		// Exit hint is drawn in reverse video.
		Hint: lipgloss.NewStyle().Reverse(true),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Hint)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Banner)),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Border)),
	}
}
