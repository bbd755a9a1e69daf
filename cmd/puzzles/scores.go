package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best scores for a puzzle",
	Long: `Display the best recorded runs for the specified puzzle.
Fifteen ranks by fewest moves, 2048 by highest score.

Examples:
  puzzles scores fifteen
  puzzles scores 2048
  puzzles scores 2048 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available games.")
		os.Exit(1)
	}

	e := setup(false)
	if e.store == nil {
		e.close()
		os.Exit(1)
	}

	var err error
	if flagClear {
		err = clearScores(e, info, os.Stdout)
	} else {
		err = printScores(e, info, os.Stdout)
	}
	e.close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clearScores deletes every recorded run of the game.
func clearScores(e *env, info registry.GameInfo, w io.Writer) error {
	n, err := e.store.ClearScores(info.ID)
	if err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	e.logger.Info("scores cleared", "game", info.ID, "count", n)
	fmt.Fprintf(w, "Cleared %d scores for %s.\n", n, info.Title)
	return nil
}

// printScores lists the best runs of the game, best first.
func printScores(e *env, info registry.GameInfo, w io.Writer) error {
	scores, err := e.store.TopScores(info.ID, info.Ranking, e.cfg.Scores.Limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "Best Scores - %s\n", info.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'puzzles play %s' to set the first best score!\n", info.ID)
		return nil
	}

	column := "Score"
	if info.Ranking == core.RankLowest {
		column = "Moves"
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", column, "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := e.store.GetGameStats(info.ID, info.Ranking)
	if err != nil {
		e.logger.Warn("cannot load stats", "game", info.ID, "err", err)
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d   Runs: %d   Average: %.1f\n", stats.Best, stats.GamesCount, stats.AvgScore)
	return nil
}
