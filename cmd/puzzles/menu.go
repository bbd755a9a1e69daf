package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a puzzle picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a puzzle.
After a puzzle ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select puzzle
  Tab          - Best scores
  Q/Esc        - Quit

Examples:
  puzzles menu
  puzzles menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e := setup(true)
	defer e.close()

	rt := runtimeConfig()
	seeded := flagSeed != 0

	for {
		menuResult, err := tui.RunMenu(e.scoreStore(), e.cfg, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rt.ScreenW = menuResult.Runtime.ScreenW
		rt.ScreenH = menuResult.Runtime.ScreenH

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(e.scoreStore(), e.cfg, rt, "")
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if _, err := playOnce(e, menuResult.GameID, rt); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}

		// A fixed seed replays the same board; otherwise draw a new one.
		if !seeded {
			rt.Seed = time.Now().UnixNano()
		}
	}
}
