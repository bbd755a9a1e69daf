package fifteen

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Snapshot captures the complete puzzle state for determinism tests.
type Snapshot struct {
	Board    core.Board
	Blank    core.Pos
	Moves    int
	Solved   bool
	Possible []core.Move
}

// Snapshot returns the current puzzle snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:    g.board,
		Blank:    g.blank,
		Moves:    g.moves,
		Solved:   g.IsFinished(),
		Possible: g.AvailableMoves().Moves(),
	}
}
