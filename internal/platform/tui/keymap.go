package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// KeyMap translates Bubble Tea key messages to moves and menu actions.
// Bindings come from config so they can be remapped and tested.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
	Back   key.Binding
	Select key.Binding
	Tab    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:   binding(cfg.Left, "left"),
		Right:  binding(cfg.Right, "right"),
		Up:     binding(cfg.Up, "up"),
		Down:   binding(cfg.Down, "down"),
		Quit:   binding(cfg.Quit, "quit"),
		Back:   binding(cfg.Back, "back"),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit, k.Back},
	}
}

// MoveFor returns the move bound to the key, or MoveNone.
func (k KeyMap) MoveFor(msg tea.KeyMsg) core.Move {
	switch {
	case key.Matches(msg, k.Left):
		return core.MoveLeft
	case key.Matches(msg, k.Right):
		return core.MoveRight
	case key.Matches(msg, k.Up):
		return core.MoveUp
	case key.Matches(msg, k.Down):
		return core.MoveDown
	}
	return core.MoveNone
}

// IsQuit reports whether the key is a quit request.
func (k KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}

// QuitHint returns the exit hint shown next to the board, e.g. "'Q' to exit".
func (k KeyMap) QuitHint() string {
	keys := k.Quit.Keys()
	if len(keys) == 0 {
		return ""
	}
	return "'" + strings.ToUpper(keys[0]) + "' to exit"
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuActionFor translates a key to a menu action.
// Quit is checked first so that a shared key never navigates.
func (k KeyMap) MenuActionFor(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Tab):
		return MenuActionScoreboard
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
