// Package fifteen implements the sliding-tile "15" puzzle.
package fifteen

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// ID is the registry identifier of the sliding puzzle.
const ID = "fifteen"

// tileCount is the number of numbered tiles (1..15).
const tileCount = core.Size*core.Size - 1

// goalBlank is where the blank sits in the solved puzzle.
var goalBlank = core.Pos{Row: core.Size - 1, Col: core.Size - 1}

var (
	// ErrInvalidBoard is returned for boards that are not a permutation of 0..15.
	ErrInvalidBoard = errors.New("fifteen: board is not a permutation of 0..15")
	// ErrUnsolvable is returned for boards that cannot reach the goal state.
	ErrUnsolvable = errors.New("fifteen: board is not solvable")
)

// Game holds the sliding puzzle state.
type Game struct {
	board core.Board
	blank core.Pos // always the position of the 0 cell
	moves int
}

func init() {
	registry.Register(ID, func(rng core.Rand) registry.Game {
		return New(rng)
	})
}

// New shuffles a solvable puzzle with the blank in the bottom-right corner.
func New(rng core.Rand) *Game {
	numbers := make([]uint32, tileCount)
	for i := range numbers {
		numbers[i] = uint32(i + 1)
	}

	for {
		rng.Shuffle(len(numbers), func(i, j int) {
			numbers[i], numbers[j] = numbers[j], numbers[i]
		})
		if Solvable(numbers, goalBlank.Row) {
			break
		}
	}

	g := &Game{blank: goalBlank}
	for i, n := range numbers {
		g.board[i/core.Size][i%core.Size] = n
	}
	return g
}

// NewFromBoard starts a puzzle from a known position.
func NewFromBoard(b core.Board) (*Game, error) {
	var seen [tileCount + 1]bool
	for _, v := range b.Flatten() {
		if v > tileCount || seen[v] {
			return nil, fmt.Errorf("%w: value %d", ErrInvalidBoard, v)
		}
		seen[v] = true
	}

	blank, _ := b.Find(0)
	if !Solvable(b.Flatten(), blank.Row) {
		return nil, ErrUnsolvable
	}

	return &Game{board: b, blank: blank}, nil
}

// Solvable reports whether a sequence of tiles can be slid into the goal
// order. values is scanned in row-major order; a zero, if present, is
// ignored. blankRow is the row index of the blank.
//
// For every tile v the number of larger tiles appearing after it is
// summed, and blankRow is added. An even total is solvable. With the blank
// in the bottom row of a 4-wide board this matches the classic
// inversion-parity rule.
func Solvable(values []uint32, blankRow int) bool {
	sum := 0
	for i, v := range values {
		if v == 0 {
			continue
		}
		for _, w := range values[i+1:] {
			if w > v {
				sum++
			}
		}
	}

	return (sum+blankRow)%2 == 0
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fifteen"
}

// Score returns the number of moves made. Fewer is better.
func (g *Game) Score() int {
	return g.moves
}

// Ranking reports that a lower move count wins.
func (g *Game) Ranking() core.Ranking {
	return core.RankLowest
}

// WindowSize returns the board area: 4 rows of four 4-wide cells.
func (g *Game) WindowSize() (rows, cols int) {
	return core.Size, core.Size * cellWidth
}

// Board returns a copy of the current board.
func (g *Game) Board() core.Board {
	return g.board
}

// Blank returns the position of the empty cell.
func (g *Game) Blank() core.Pos {
	return g.blank
}
