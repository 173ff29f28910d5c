// solitui is a mouse-driven patience card game for the terminal.
//
// Usage:
//
//	solitui list              - List available deal modes
//	solitui play [game]       - Play a deal (default: klondike)
//	solitui menu              - Start menu to pick deals interactively
//	solitui serve             - Start SSH server for remote play
//	solitui stats [game]      - Show statistics for a deal mode
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.solitui/results.db)
//	--debug         - Show the move trace next to the board
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/FBastiaan04/solitui/internal/solitaire"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solitui",
	Short: "Solitui - Patience in your terminal",
	Long: `Solitui is a terminal card game played entirely with the mouse,
with a few keys for the rest.

Available commands:
  list     - Show all available deal modes
  play     - Play a deal directly
  menu     - Interactive deal picker menu
  serve    - Start SSH server for remote play
  stats    - View play statistics

Examples:
  solitui play
  solitui play klondike_daily
  solitui menu
  solitui serve --ssh :2222
  solitui stats klondike`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.solitui/results.db", "Path to results database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show move trace next to the board")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
