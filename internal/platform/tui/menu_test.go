package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/games/fifteen"
	"github.com/vovakirdan/tui-puzzles/internal/games/t2048"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

func menuPress(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(&fakeStore{best: 7, hasBest: true}, config.Default(), core.DefaultConfig())

	if len(m.items) != 2 {
		t.Fatalf("menu has %d items, want 2", len(m.items))
	}
	if m.items[0].GameID != t2048.ID || m.items[1].GameID != fifteen.ID {
		t.Errorf("items not sorted by ID: %+v", m.items)
	}
	if m.items[0].Best != "7" {
		t.Errorf("Best = %q, want 7", m.items[0].Best)
	}

	m, _ = menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuPress(m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last item
	m, cmd := menuPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("select should exit the menu")
	}

	res := m.result()
	if res.GameID != fifteen.ID || res.Quit || res.WantsScoreboard {
		t.Errorf("result() = %+v, want fifteen selected", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, config.Default(), core.DefaultConfig())
	if m.items[0].Best != "-" {
		t.Errorf("Best without store = %q, want -", m.items[0].Best)
	}

	sb, _ := menuPress(m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.result().WantsScoreboard {
		t.Error("tab should request the scoreboard")
	}

	q, _ := menuPress(m, runeKey('q'))
	if !q.result().Quit || q.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestScoreboardOrdering(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i, score := range []int{30, 10, 20} {
		if _, err := store.SaveScore(string(rune('a'+i)), fifteen.ID, score); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveScore("z", t2048.ID, 512); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, config.Default(), core.DefaultConfig(), fifteen.ID)

	scores := m.Scores()
	if len(scores) != 3 || scores[0].Score != 10 || scores[2].Score != 30 {
		t.Errorf("fifteen scores = %+v, want fewest moves first", scores)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.Scores(); len(got) != 1 || got[0].Score != 512 {
		t.Errorf("2048 scores = %+v", got)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || !isQuit(cmd) {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, config.Default(), core.DefaultConfig(), "")
	if len(m.Scores()) != 0 {
		t.Error("no store should list no scores")
	}
}
