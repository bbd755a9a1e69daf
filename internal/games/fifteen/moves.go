package fifteen

import "github.com/vovakirdan/tui-puzzles/internal/core"

// AvailableMoves returns the moves that keep the blank on the board.
// A move names the direction the neighbouring tile slides into the blank,
// so the blank itself travels the opposite way.
func (g *Game) AvailableMoves() core.MoveSet {
	moves := core.AllDirections()

	switch g.blank.Col {
	case 0:
		moves.Remove(core.MoveRight)
	case core.Size - 1:
		moves.Remove(core.MoveLeft)
	}

	switch g.blank.Row {
	case 0:
		moves.Remove(core.MoveDown)
	case core.Size - 1:
		moves.Remove(core.MoveUp)
	}

	return moves
}

// blankTarget returns where the blank travels for a move.
func blankTarget(from core.Pos, m core.Move) (core.Pos, bool) {
	switch m {
	case core.MoveLeft:
		return core.Pos{Row: from.Row, Col: from.Col + 1}, true
	case core.MoveRight:
		return core.Pos{Row: from.Row, Col: from.Col - 1}, true
	case core.MoveUp:
		return core.Pos{Row: from.Row + 1, Col: from.Col}, true
	case core.MoveDown:
		return core.Pos{Row: from.Row - 1, Col: from.Col}, true
	default:
		return from, false
	}
}

// ApplyMove slides one tile into the blank.
// Returns false without touching the board when the move would push the
// blank off the board or is MoveNone.
func (g *Game) ApplyMove(m core.Move) bool {
	if !g.AvailableMoves().Contains(m) {
		return false
	}

	next, ok := blankTarget(g.blank, m)
	if !ok {
		return false
	}

	g.board.Set(g.blank, g.board.Get(next))
	g.board.Set(next, 0)
	g.blank = next
	g.moves++
	return true
}

// IsFinished reports whether the tiles read 1..15 with the blank last.
func (g *Game) IsFinished() bool {
	if g.blank != goalBlank {
		return false
	}

	// Walk backwards from the blank: every tile must be one less than the
	// tile after it.
	var prev uint32
	for r := core.Size - 1; r >= 0; r-- {
		for c := core.Size - 1; c >= 0; c-- {
			n := g.board[r][c]
			if prev != 0 && prev != n+1 {
				return false
			}
			prev = n
		}
	}
	return true
}
