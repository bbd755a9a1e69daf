package core

// Move is a player's directional intent, shared by every puzzle engine.
// The zero value is MoveNone, which engines treat as an inert input.
type Move int

const (
	MoveNone  Move = iota // no-op sentinel; never applied
	MoveLeft              // Left arrow, h, a
	MoveRight             // Right arrow, l, d
	MoveUp                // Up arrow, k, w
	MoveDown              // Down arrow, j, s
)

// moveCount is the size of the closed Move domain, sentinel included.
const moveCount = int(MoveDown) + 1

// Directions lists the four directional moves in code order.
var Directions = [...]Move{MoveLeft, MoveRight, MoveUp, MoveDown}

// Code returns the stable small-integer code of the move.
// Left=1, Right=2, Up=3, Down=4, None=0.
func (m Move) Code() int {
	switch m {
	case MoveLeft, MoveRight, MoveUp, MoveDown:
		return int(m)
	default:
		return 0
	}
}

// MoveFromCode maps a code back to its Move.
// Every code outside 1..4 maps to MoveNone.
func MoveFromCode(code int) Move {
	switch Move(code) {
	case MoveLeft, MoveRight, MoveUp, MoveDown:
		return Move(code)
	default:
		return MoveNone
	}
}

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	default:
		return "None"
	}
}

// MoveSet is a set over the four directional moves, indexed by Move.Code.
// MoveNone is never a member.
type MoveSet struct {
	has [moveCount]bool
}

// AllDirections returns a set containing Left, Right, Up and Down.
func AllDirections() MoveSet {
	var s MoveSet
	for _, m := range Directions {
		s.Add(m)
	}
	return s
}

// Add inserts a directional move. Adding MoveNone is a no-op.
func (s *MoveSet) Add(m Move) {
	if c := m.Code(); c != 0 {
		s.has[c] = true
	}
}

// Remove deletes a move from the set.
func (s *MoveSet) Remove(m Move) {
	s.has[m.Code()] = false
}

// Contains reports whether the move is in the set.
func (s MoveSet) Contains(m Move) bool {
	c := m.Code()
	return c != 0 && s.has[c]
}

// Len returns the number of moves in the set.
func (s MoveSet) Len() int {
	n := 0
	for _, m := range Directions {
		if s.has[m.Code()] {
			n++
		}
	}
	return n
}

// Moves returns the members ordered by code.
func (s MoveSet) Moves() []Move {
	moves := make([]Move, 0, len(Directions))
	for _, m := range Directions {
		if s.has[m.Code()] {
			moves = append(moves, m)
		}
	}
	return moves
}
