package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// CollapseLeft compacts a line toward its head and merges equal neighbours.
// Returns the line padded with zeros to the board width and the points
// gained from merges.
//
// Merges do not cascade: a tile produced by a merge is emitted immediately
// and never merges again in the same pass, so [4,4,8] becomes [8,8,0,0].
// Panics if more than core.Size tiles survive, which only a malformed line
// can produce.
func CollapseLeft(values []uint32) (result [core.Size]uint32, gained uint32) {
	compact := make([]uint32, 0, len(values))
	for _, v := range values {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	n := 0
	for len(compact) > 0 {
		num := compact[0]
		compact = compact[1:]

		if len(compact) > 0 && compact[0] == num {
			compact = compact[1:]
			num += num
			gained += num
		}

		if n >= core.Size {
			panic(fmt.Sprintf("t2048: collapse of %v does not fit in %d cells", values, core.Size))
		}
		result[n] = num
		n++
	}

	return result, gained
}

// line returns the cell positions of line i in scan order for a move.
// Left/Right walk row i, Up/Down walk column i. Right and Down are read
// from the trailing edge so merges anchor there.
func line(m core.Move, i int) [core.Size]core.Pos {
	var cells [core.Size]core.Pos
	for j := range core.Size {
		switch m {
		case core.MoveLeft:
			cells[j] = core.Pos{Row: i, Col: j}
		case core.MoveRight:
			cells[j] = core.Pos{Row: i, Col: core.Size - 1 - j}
		case core.MoveUp:
			cells[j] = core.Pos{Row: j, Col: i}
		case core.MoveDown:
			cells[j] = core.Pos{Row: core.Size - 1 - j, Col: i}
		}
	}
	return cells
}

// Collapse applies a directional collapse to every row or column of board.
// Returns the points gained and whether any cell changed.
// MoveNone leaves the board untouched.
func Collapse(board *core.Board, m core.Move) (gained uint32, changed bool) {
	if m.Code() == 0 {
		return 0, false
	}

	for i := range core.Size {
		cells := line(m, i)

		values := make([]uint32, core.Size)
		for j, p := range cells {
			values[j] = board.Get(p)
		}

		collapsed, delta := CollapseLeft(values)
		gained += delta

		for j, p := range cells {
			if board.Get(p) != collapsed[j] {
				changed = true
			}
			board.Set(p, collapsed[j])
		}
	}

	return gained, changed
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same non-zero value.
func HasPossibleMerge(board core.Board) bool {
	for y := range core.Size {
		for x := range core.Size {
			val := board[y][x]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < core.Size-1 && board[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < core.Size-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if a free cell exists or two neighbours can merge.
func CanMove(board core.Board) bool {
	return len(board.FreeCells()) > 0 || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board core.Board) uint32 {
	var maxVal uint32
	for y := range core.Size {
		for x := range core.Size {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}
