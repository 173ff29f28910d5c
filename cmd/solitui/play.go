package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FBastiaan04/solitui/internal/config"
	"github.com/FBastiaan04/solitui/internal/core"
	"github.com/FBastiaan04/solitui/internal/platform/tui"
	"github.com/FBastiaan04/solitui/internal/registry"
	"github.com/FBastiaan04/solitui/internal/solitaire"
	"github.com/FBastiaan04/solitui/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a deal",
	Long: `Start playing the specified deal mode (default: klondike).

Controls:
  Mouse      - Click a card, then click where it should go
  D/Space    - Draw from the stock
  C          - Clear the selection
  N          - Start a new deal
  Q/Esc      - Quit

Examples:
  solitui play
  solitui play klondike_daily
  solitui play --seed 42
  solitui play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "klondike"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown deal mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'solitui list' to see available modes.")
		os.Exit(1)
	}

	// Load rule and theme configuration
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyConfig(fileCfg)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Debug:   flagDebug,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyConfig injects file configuration into the game packages.
func applyConfig(cfg config.Config) {
	solitaire.SetStrictFoundation(cfg.Rules.StrictFoundation)
	solitaire.SetHighContrast(cfg.Theme.HighContrast)
	if back := cfg.Theme.BackRune(); back != 0 {
		solitaire.SetCardBack(back)
	}
}
