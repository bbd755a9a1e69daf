package fifteen

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// cellWidth is the width of one right-aligned cell.
const cellWidth = 4

// Render draws the board: tiles in cyan, the blank as a yellow dot.
func (g *Game) Render(dst *core.Screen) {
	for r := range core.Size {
		for c := range core.Size {
			n := g.board[r][c]

			label, color := strconv.Itoa(int(n)), core.ColorCyan
			if n == 0 {
				label, color = ".", core.ColorYellow
			}

			dst.DrawColoredText(c*cellWidth, r, fmt.Sprintf("%*s", cellWidth, label), color)
		}
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/hjkl: slide a tile into the gap | Q: Quit"
}

// FinishedMessage is shown once the puzzle is solved.
func (g *Game) FinishedMessage() string {
	return "You won!"
}
