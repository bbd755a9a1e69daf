package t2048

import "github.com/vovakirdan/tui-puzzles/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Score   int
	Board   core.Board
	MaxTile uint32
	Free    int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.IsFinished() {
		state = StateGameOver
	}

	return Snapshot{
		Score:   g.score,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		Free:    len(g.board.FreeCells()),
		State:   state,
	}
}
