package core

import "testing"

func TestMoveCodes(t *testing.T) {
	tests := []struct {
		move Move
		code int
		name string
	}{
		{MoveNone, 0, "None"},
		{MoveLeft, 1, "Left"},
		{MoveRight, 2, "Right"},
		{MoveUp, 3, "Up"},
		{MoveDown, 4, "Down"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.move.Code(); got != tc.code {
				t.Errorf("%v.Code() = %d, expected %d", tc.move, got, tc.code)
			}
			if got := MoveFromCode(tc.code); got != tc.move {
				t.Errorf("MoveFromCode(%d) = %v, expected %v", tc.code, got, tc.move)
			}
			if got := tc.move.String(); got != tc.name {
				t.Errorf("String() = %q, expected %q", got, tc.name)
			}
		})
	}
}

func TestMoveFromCodeOutOfRange(t *testing.T) {
	for _, code := range []int{-1, 5, 16, 1 << 20} {
		if got := MoveFromCode(code); got != MoveNone {
			t.Errorf("MoveFromCode(%d) = %v, expected None", code, got)
		}
	}
	if got := Move(42).Code(); got != 0 {
		t.Errorf("unknown move Code() = %d, expected 0", got)
	}
}

func TestMoveSet(t *testing.T) {
	s := AllDirections()
	if s.Len() != 4 {
		t.Fatalf("AllDirections().Len() = %d, expected 4", s.Len())
	}
	if s.Contains(MoveNone) {
		t.Error("MoveNone must never be a member")
	}

	s.Remove(MoveRight)
	s.Remove(MoveUp)
	if s.Contains(MoveRight) || s.Contains(MoveUp) {
		t.Error("removed moves should not be members")
	}
	if !s.Contains(MoveLeft) || !s.Contains(MoveDown) {
		t.Error("remaining moves should still be members")
	}

	got := s.Moves()
	if len(got) != 2 || got[0] != MoveLeft || got[1] != MoveDown {
		t.Errorf("Moves() = %v, expected [Left Down]", got)
	}

	s.Add(MoveNone)
	if s.Len() != 2 {
		t.Errorf("adding MoveNone should be a no-op, Len() = %d", s.Len())
	}

	var empty MoveSet
	if empty.Len() != 0 || len(empty.Moves()) != 0 {
		t.Error("zero MoveSet should be empty")
	}
}
