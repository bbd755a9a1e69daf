// Package core provides fundamental types shared by the puzzle engines and
// the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Size is the fixed board dimension for every puzzle.
const Size = 4

// Pos addresses a board cell.
type Pos struct {
	Row, Col int
}

// InBounds reports whether the position lies on a Size x Size board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Board is a 4x4 grid of non-negative values stored row-major.
// A zero value is an empty cell. Boards are plain arrays, so assignment copies.
type Board [Size][Size]uint32

// Get returns the value at the given position.
func (b Board) Get(p Pos) uint32 {
	return b[p.Row][p.Col]
}

// Set writes a value at the given position.
func (b *Board) Set(p Pos, v uint32) {
	b[p.Row][p.Col] = v
}

// Find returns the first position holding v in row-major order.
func (b Board) Find(v uint32) (Pos, bool) {
	for r := range Size {
		for c := range Size {
			if b[r][c] == v {
				return Pos{Row: r, Col: c}, true
			}
		}
	}
	return Pos{}, false
}

// FreeCells returns the positions of all zero cells in row-major order.
func (b Board) FreeCells() []Pos {
	var free []Pos
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				free = append(free, Pos{Row: r, Col: c})
			}
		}
	}
	return free
}

// Flatten returns the cells in row-major order.
func (b Board) Flatten() []uint32 {
	out := make([]uint32, 0, Size*Size)
	for r := range Size {
		out = append(out, b[r][:]...)
	}
	return out
}

// Sum returns the total of all cell values.
func (b Board) Sum() uint64 {
	var total uint64
	for r := range Size {
		for c := range Size {
			total += uint64(b[r][c])
		}
	}
	return total
}
