// Package t2048 implements the 2048 merge-tile puzzle.
package t2048

import (
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// ID is the registry identifier of the merge puzzle.
const ID = "2048"

// spawnValues are the tiles the spawn rule chooses from, uniformly.
var spawnValues = [...]uint32{2, 4}

// Game implements the 2048 puzzle.
type Game struct {
	rng   core.Rand
	board core.Board
	score int
}

func init() {
	registry.Register(ID, func(rng core.Rand) registry.Game {
		return New(rng)
	})
}

// New creates a game with two spawned tiles on an empty board.
func New(rng core.Rand) *Game {
	g := &Game{rng: rng}
	g.putNumber()
	g.putNumber()
	return g
}

// NewFromBoard creates a game from a fixed position. Tiles are spawned
// from rng after state-changing moves.
func NewFromBoard(rng core.Rand, board core.Board, score int) *Game {
	return &Game{rng: rng, board: board, score: score}
}

// putNumber writes a 2 or a 4 into a random free cell.
// Callers guarantee a free cell exists; a full board is a logic fault.
func (g *Game) putNumber() {
	free := g.board.FreeCells()
	if len(free) == 0 {
		panic("t2048: spawn on a board with no free cells")
	}

	cell := free[g.rng.Intn(len(free))]
	g.board.Set(cell, spawnValues[g.rng.Intn(len(spawnValues))])
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// ApplyMove collapses the board in the given direction.
// A finished board rejects every move. Otherwise the move counts as
// applied, and a new tile spawns only if some cell changed.
func (g *Game) ApplyMove(m core.Move) bool {
	if g.IsFinished() {
		return false
	}

	gained, changed := Collapse(&g.board, m)
	g.score += int(gained)

	if changed {
		g.putNumber()
	}
	return true
}

// HasMoves reports whether any move can still change the board.
func (g *Game) HasMoves() bool {
	return CanMove(g.board)
}

// IsFinished returns true if no free cell and no adjacent equal pair remain.
func (g *Game) IsFinished() bool {
	return !g.HasMoves()
}

// Score returns the accumulated merge points.
func (g *Game) Score() int {
	return g.score
}

// Ranking reports that a higher score wins.
func (g *Game) Ranking() core.Ranking {
	return core.RankHighest
}

// WindowSize returns the board area: 4 rows of four 4-wide cells.
func (g *Game) WindowSize() (rows, cols int) {
	return core.Size, core.Size * cellWidth
}

// Board returns a copy of the current board.
func (g *Game) Board() core.Board {
	return g.board
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() uint32 {
	return MaxTile(g.board)
}
