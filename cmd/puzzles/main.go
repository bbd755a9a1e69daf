// puzzles is a terminal platform for two 4x4 puzzles: the sliding
// fifteen puzzle and the 2048 merge game.
//
// Usage:
//
//	puzzles list                     - List available puzzles
//	puzzles play <game>              - Play a puzzle
//	puzzles menu                     - Start menu to pick puzzles interactively
//	puzzles scores <game> [--clear]  - Show or clear best scores for a puzzle
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default from config: ~/.puzzles/scores.db)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Log file used while a puzzle screen is open
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-puzzles/internal/games/fifteen"
	_ "github.com/vovakirdan/tui-puzzles/internal/games/t2048"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "TUI Puzzles - Play 4x4 puzzles in your terminal",
	Long: `TUI Puzzles lets you play the sliding fifteen puzzle and 2048
directly in your terminal.

Available commands:
  list     - Show all available puzzles
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  scores   - View or clear best scores

Examples:
  puzzles list
  puzzles play fifteen
  puzzles play 2048 --seed 42
  puzzles menu
  puzzles scores fifteen`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.puzzles/puzzles.log", "Log file used while a puzzle screen is open")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
