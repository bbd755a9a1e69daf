package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// cellWidth is the width of one right-aligned cell.
const cellWidth = 4

// kiloThreshold is the smallest value rendered with a K suffix.
const kiloThreshold = 1024

// tileColors rotate with the tile's power of two: 2 is cyan, 4 green, ...
var tileColors = [...]core.Color{
	core.ColorCyan,
	core.ColorGreen,
	core.ColorMagenta,
	core.ColorBlue,
	core.ColorRed,
}

// Label returns the short text for a tile value.
// Values below 1024 print as decimals; larger ones as multiples of 1024
// with a K suffix, so 1024 is "1K" and 16384 is "16K".
func Label(v uint32) string {
	if v < kiloThreshold {
		return strconv.FormatUint(uint64(v), 10)
	}
	return strconv.FormatUint(uint64(v/kiloThreshold), 10) + "K"
}

// TileColor returns the display color for a value. Empty cells are yellow.
func TileColor(v uint32) core.Color {
	if v == 0 {
		return core.ColorYellow
	}
	power := bits.Len32(v) - 1 // log2 for powers of two
	if power < 1 {
		power = 1
	}
	return tileColors[(power-1)%len(tileColors)]
}

// Render draws the board with empty cells as yellow dots.
func (g *Game) Render(dst *core.Screen) {
	for r := range core.Size {
		for c := range core.Size {
			v := g.board[r][c]

			label := "."
			if v != 0 {
				label = Label(v)
			}

			dst.DrawColoredText(c*cellWidth, r, fmt.Sprintf("%*s", cellWidth, label), TileColor(v))
		}
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/hjkl: Move | Q: Quit"
}

// FinishedMessage is shown when no move is left.
func (g *Game) FinishedMessage() string {
	return "No moves left!"
}
