package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

// ScoreStore records finished runs and reports the best one.
// *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(runID, gameID string, score int) (int64, error)
	BestScore(gameID string, r core.Ranking) (int, bool, error)
	TopScores(gameID string, r core.Ranking, limit int) ([]storage.ScoreEntry, error)
}

// finisher is implemented by games that customise the finished banner.
type finisher interface {
	FinishedMessage() string
}

// controller is implemented by games that describe their controls.
type controller interface {
	Controls() string
}

// Model is the Bubble Tea model for playing one puzzle run.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  ScoreStore
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	theme  Theme
	width  int
	height int

	runID    string
	now      func() time.Time
	started  time.Time
	elapsed  time.Duration
	moves    int // Moves that changed the board
	best     int
	hasBest  bool
	finished bool
	recorded bool // Whether the score has been saved for this run
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store ScoreStore, logger *log.Logger, cfg config.Config, rt core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows, cols := game.WindowSize()
	m := Model{
		game:   game,
		screen: core.NewScreen(cols, rows),
		store:  store,
		logger: logger,
		keys:   NewKeyMap(cfg.Keys),
		help:   help.New(),
		theme:  NewTheme(cfg.Theme),
		width:  rt.ScreenW,
		height: rt.ScreenH,
		runID:  uuid.NewString(),
		now:    time.Now,
	}
	m.started = m.now()
	m.loadBest()

	m.logger.Info("run started", "game", game.ID(), "run", m.runID)

	// A shuffle can land on the goal; such a run is over before the first key.
	if game.IsFinished() {
		m.finish()
	}
	return m
}

// loadBest fetches the best recorded score for the stats panel.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, ok, err := m.store.BestScore(m.game.ID(), m.game.Ranking())
	if err != nil {
		m.logger.Warn("cannot load best score", "game", m.game.ID(), "err", err)
		return
	}
	m.best, m.hasBest = best, ok
}

// Init starts the elapsed-time clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.finished || m.quitting {
			return m, nil
		}
		m.elapsed = m.now().Sub(m.started)
		return m, tickCmd(clockInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		if !m.finished {
			m.logger.Info("run abandoned", "game", m.game.ID(), "run", m.runID, "moves", m.moves)
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Any key leaves the finished screen.
	if m.finished {
		m.quitting = true
		return m, tea.Quit
	}

	mv := m.keys.MoveFor(msg)
	if mv == core.MoveNone {
		return m, nil
	}

	before := m.game.Board()
	if m.game.ApplyMove(mv) && m.game.Board() != before {
		m.moves++
		m.logger.Debug("move", "game", m.game.ID(), "move", mv, "score", m.game.Score())
	}

	if m.game.IsFinished() {
		m.finish()
	}
	return m, nil
}

// finish freezes the clock and records the score once.
func (m *Model) finish() {
	m.finished = true
	m.elapsed = m.now().Sub(m.started)

	if m.recorded {
		return
	}
	m.recorded = true

	score := m.game.Score()
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"run", m.runID,
		"score", score,
		"ranking", m.game.Ranking(),
		"moves", m.moves,
		"elapsed", m.elapsed.Round(time.Second),
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.runID, m.game.ID(), score); err != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "run", m.runID, "err", err)
		return
	}
	if !m.hasBest || m.game.Ranking().Better(score, m.best) {
		m.best, m.hasBest = score, true
	}
}

// View renders the board with the stats panel to its right.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	board := m.theme.Board.Render(RenderScreen(m.screen))

	view := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, board, m.theme.Stats.Render(m.statsPanel())),
		"",
		m.theme.Help.Render(m.help.View(m.keys)),
	)
	if m.width <= 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	for i, l := range lines {
		lines[i] = centerText(l, m.width)
	}
	return "\n" + strings.Join(lines, "\n")
}

// statsPanel renders score, best, time, controls and the finished banner.
func (m Model) statsPanel() string {
	label := m.theme.Label.Render

	best := "-"
	if m.hasBest {
		best = fmt.Sprintf("%d", m.best)
	}

	lines := []string{
		m.theme.Title.Render(m.game.Title()),
		"",
		label("Score: ") + fmt.Sprintf("%d", m.game.Score()),
		label("Best:  ") + best,
		label("Time:  ") + formatElapsed(m.elapsed),
		"",
	}

	if m.finished {
		msg := "You won!"
		if f, ok := m.game.(finisher); ok {
			msg = f.FinishedMessage()
		}
		lines = append(lines, m.theme.Banner.Render(msg), "Press any key")
	} else {
		lines = append(lines, "")
	}

	if c, ok := m.game.(controller); ok {
		lines = append(lines, m.theme.Help.Render(c.Controls()))
	}
	lines = append(lines, "", m.theme.Hint.Render(m.keys.QuitHint()))
	return strings.Join(lines, "\n")
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	s := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// Result reports how a run ended.
type Result struct {
	RunID    string
	Score    int
	Finished bool
	Elapsed  time.Duration
}

// Result returns the outcome of the run so far.
func (m Model) Result() Result {
	return Result{
		RunID:    m.runID,
		Score:    m.game.Score(),
		Finished: m.finished,
		Elapsed:  m.elapsed,
	}
}

// Run starts the Bubble Tea program for one run of the game.
func Run(game registry.Game, store ScoreStore, logger *log.Logger, cfg config.Config, rt core.RuntimeConfig) (Result, error) {
	model := NewModel(game, store, logger, cfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return model.Result(), nil
}
