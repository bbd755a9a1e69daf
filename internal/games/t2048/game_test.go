package t2048

import (
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// lastCellRand always picks the last option, so spawns land in the
// bottom-right-most free cell with value 4.
type lastCellRand struct{}

func (lastCellRand) Intn(n int) int { return n - 1 }
func (lastCellRand) Shuffle(n int, swap func(i, j int)) {}

func TestCollapseLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []uint32
		expected [4]uint32
		score    uint32
	}{
		{
			name:     "pair",
			input:    []uint32{2, 2},
			expected: [4]uint32{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "pair then single",
			input:    []uint32{2, 2, 4},
			expected: [4]uint32{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "three pairs in a long line",
			input:    []uint32{2, 2, 4, 4, 16, 16},
			expected: [4]uint32{4, 8, 32, 0},
			score:    44,
		},
		{
			name:     "merge across a gap",
			input:    []uint32{2, 0, 2, 16},
			expected: [4]uint32{4, 16, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []uint32{2, 2, 2, 0},
			expected: [4]uint32{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []uint32{2, 2, 2, 2},
			expected: [4]uint32{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no cascade into merged tile",
			input:    []uint32{4, 4, 8, 0},
			expected: [4]uint32{8, 8, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []uint32{2, 4, 8, 16},
			expected: [4]uint32{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with multiple gaps",
			input:    []uint32{2, 0, 0, 2},
			expected: [4]uint32{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "empty row",
			input:    []uint32{0, 0, 0, 0},
			expected: [4]uint32{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []uint32{0, 4, 0, 0},
			expected: [4]uint32{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := CollapseLeft(tt.input)
			if result != tt.expected {
				t.Errorf("CollapseLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("CollapseLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestCollapseLeftOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CollapseLeft with five unmergeable tiles should panic")
		}
	}()
	CollapseLeft([]uint32{2, 4, 8, 16, 32})
}

func TestCollapseDirections(t *testing.T) {
	board := core.Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		name     string
		move     core.Move
		expected core.Board
		score    uint32
	}{
		{
			name: "left",
			move: core.MoveLeft,
			expected: core.Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "right",
			move: core.MoveRight,
			expected: core.Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "up",
			move: core.MoveUp,
			expected: core.Board{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			name: "down",
			move: core.MoveDown,
			expected: core.Board{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board
			score, changed := Collapse(&b, tt.move)
			if b != tt.expected {
				t.Errorf("Collapse(%v): got\n%v\nwant\n%v", tt.move, b, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Collapse(%v) score = %d, want %d", tt.move, score, tt.score)
			}
			if !changed {
				t.Errorf("Collapse(%v) should report a change", tt.move)
			}
		})
	}
}

func TestCollapseNone(t *testing.T) {
	board := core.Board{{2, 2, 0, 0}}
	b := board

	score, changed := Collapse(&b, core.MoveNone)
	if changed || score != 0 || b != board {
		t.Error("MoveNone must not collapse anything")
	}
}

func TestLeftThenRightConservesSum(t *testing.T) {
	board := core.Board{
		{2, 2, 2, 0},
		{4, 4, 8, 8},
		{0, 16, 0, 16},
		{2, 4, 2, 4},
	}
	before := board.Sum()

	b := board
	Collapse(&b, core.MoveLeft)
	Collapse(&b, core.MoveRight)

	if b.Sum() != before {
		t.Errorf("tile sum changed from %d to %d; merges must conserve value", before, b.Sum())
	}
	if b == board {
		t.Error("Left then Right should not restore a board that merged")
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	board := core.Board{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 4, 8, 0},
	}

	g := NewFromBoard(core.NewRand(1), board, 0)
	if !g.ApplyMove(core.MoveLeft) {
		t.Error("a move on a live board counts as applied even without change")
	}
	if g.Board() != board {
		t.Errorf("left-packed board should not change or spawn:\n%v", g.Board())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
}

func TestApplyMoveMergeScenario(t *testing.T) {
	board := core.Board{{2, 2, 0, 0}}

	g := NewFromBoard(lastCellRand{}, board, 0)
	if !g.ApplyMove(core.MoveLeft) {
		t.Fatal("ApplyMove(Left) should apply")
	}

	got := g.Board()
	if got[0] != [4]uint32{4, 0, 0, 0} {
		t.Errorf("row 0 = %v, want [4 0 0 0]", got[0])
	}
	if g.Score() != 4 {
		t.Errorf("Score() = %d, want 4", g.Score())
	}
	if got[3][3] != 4 {
		t.Errorf("expected exactly one spawned tile in the last free cell, board:\n%v", got)
	}
	if n := 16 - len(got.FreeCells()); n != 2 {
		t.Errorf("tile count = %d, want 2", n)
	}
}

func TestApplyMoveOnFinishedBoard(t *testing.T) {
	board := core.Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	g := NewFromBoard(core.NewRand(1), board, 100)
	for _, m := range []core.Move{core.MoveLeft, core.MoveRight, core.MoveUp, core.MoveDown, core.MoveNone} {
		if g.ApplyMove(m) {
			t.Errorf("ApplyMove(%v) on a finished board should be rejected", m)
		}
	}
	if g.Board() != board || g.Score() != 100 {
		t.Error("finished board must not be mutated")
	}
}

func TestIsFinished(t *testing.T) {
	tests := []struct {
		name     string
		board    core.Board
		finished bool
	}{
		{
			name: "full without neighbours",
			board: core.Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			finished: true,
		},
		{
			name: "full with horizontal pair",
			board: core.Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			finished: false,
		},
		{
			name: "full with vertical pair",
			board: core.Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			finished: false,
		},
		{
			name: "one free cell",
			board: core.Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			finished: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewFromBoard(core.NewRand(1), tt.board, 0)
			if got := g.IsFinished(); got != tt.finished {
				t.Errorf("IsFinished() = %v, want %v", got, tt.finished)
			}
			if g.HasMoves() == tt.finished {
				t.Error("HasMoves() must be the negation of IsFinished()")
			}
		})
	}
}

func TestNewSpawnsTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(core.NewRand(seed))
		board := g.Board()

		tiles := 0
		for _, v := range board.Flatten() {
			switch v {
			case 0:
			case 2, 4:
				tiles++
			default:
				t.Fatalf("seed %d: unexpected spawned value %d", seed, v)
			}
		}
		if tiles != 2 {
			t.Errorf("seed %d: %d initial tiles, want 2", seed, tiles)
		}
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := New(core.NewRand(12345))
	g2 := New(core.NewRand(12345))

	for _, m := range []core.Move{core.MoveLeft, core.MoveUp, core.MoveRight, core.MoveDown} {
		g1.ApplyMove(m)
		g2.ApplyMove(m)
	}

	if g1.Board() != g2.Board() || g1.Score() != g2.Score() {
		t.Errorf("same seed should produce the same game:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}
}

func TestPutNumberOnFullBoardPanics(t *testing.T) {
	g := NewFromBoard(core.NewRand(1), core.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, 0)

	defer func() {
		if recover() == nil {
			t.Error("putNumber on a full board should panic")
		}
	}()
	g.putNumber()
}

func TestLabel(t *testing.T) {
	tests := []struct {
		value    uint32
		expected string
	}{
		{2, "2"},
		{128, "128"},
		{512, "512"},
		{1024, "1K"},
		{2048, "2K"},
		{16384, "16K"},
	}

	for _, tt := range tests {
		if got := Label(tt.value); got != tt.expected {
			t.Errorf("Label(%d) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    uint32
		expected core.Color
	}{
		{0, core.ColorYellow},
		{2, core.ColorCyan},
		{4, core.ColorGreen},
		{8, core.ColorMagenta},
		{16, core.ColorBlue},
		{32, core.ColorRed},
		{64, core.ColorCyan},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.expected {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.expected)
		}
	}
}

func TestRender(t *testing.T) {
	g := NewFromBoard(core.NewRand(1), core.Board{
		{2, 0, 0, 1024},
	}, 0)

	rows, cols := g.WindowSize()
	screen := core.NewScreen(cols, rows)
	g.Render(screen)

	if got := screen.Row(0); got != "   2   .   .  1K" {
		t.Errorf("row 0 = %q", got)
	}
	if c := screen.GetCell(7, 0).Color; c != core.ColorYellow {
		t.Errorf("empty cell color = %d, want yellow", c)
	}
}

func TestSnapshot(t *testing.T) {
	g := NewFromBoard(core.NewRand(1), core.Board{
		{8, 0, 0, 0},
	}, 12)

	snap := g.Snapshot()
	if snap.Score != 12 || snap.MaxTile != 8 || snap.Free != 15 || snap.State != StatePlaying {
		t.Errorf("Snapshot = %+v", snap)
	}
}
