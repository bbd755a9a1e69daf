package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle.

Controls (default bindings, see --config):
  Arrows/hjkl/wasd - Move
  Q/Ctrl+C         - Quit

Once the puzzle is over, any key exits.

Examples:
  puzzles play fifteen
  puzzles play 2048
  puzzles play 2048 --seed 42
  puzzles play fifteen --config ./my-keys.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available games.")
		os.Exit(1)
	}

	e := setup(true)
	rt := runtimeConfig()

	res, err := playOnce(e, gameID, rt)
	e.close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	printResult(gameID, res)
}

// playOnce creates a game from the registry and runs it to completion.
func playOnce(e *env, gameID string, rt core.RuntimeConfig) (tui.Result, error) {
	game, err := registry.Create(gameID, core.NewRand(rt.Seed))
	if err != nil {
		return tui.Result{}, err
	}

	e.logger.Debug("starting game", "game", gameID, "seed", rt.Seed)
	return tui.Run(game, e.scoreStore(), e.logger, e.cfg, rt)
}

// printResult prints a one-line summary after the screen closes.
func printResult(gameID string, res tui.Result) {
	if !res.Finished {
		return
	}

	info, ok := registry.Info(gameID)
	if !ok {
		return
	}

	if info.Ranking == core.RankLowest {
		fmt.Printf("%s solved in %d moves.\n", info.Title, res.Score)
	} else {
		fmt.Printf("%s over with a score of %d.\n", info.Title, res.Score)
	}
}
