package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/FBastiaan04/solitui/internal/registry"
	"github.com/FBastiaan04/solitui/internal/storage"
)

var (
	flagBestStats  bool
	flagClearStats bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show statistics for a deal mode",
	Long: `Display recent results and summary statistics for the specified
deal mode. Without an argument, shows an overview of every mode played.

Examples:
  solitui stats
  solitui stats klondike
  solitui stats klondike --best
  solitui stats klondike --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagBestStats, "best", false, "Show best deals instead of most recent")
	statsCmd.Flags().BoolVar(&flagClearStats, "clear", false, "Delete all recorded results for the deal mode")
}

func runStats(cmd *cobra.Command, args []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printOverview(store)
		return
	}

	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown deal mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'solitui list' to see available modes.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	if flagClearStats {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", title)
		return
	}

	// Get results
	var results []storage.Result
	if flagBestStats {
		results, err = store.BestResults(gameID, 10)
	} else {
		results, err = store.RecentResults(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	// Display results
	if flagBestStats {
		fmt.Printf("Best Deals - %s\n", title)
	} else {
		fmt.Printf("Recent Deals - %s\n", title)
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No deals recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'solitui play %s' to record the first deal!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-6s  %-6s  %-4s  %s\n", "Home", "Moves", "Time", "Won", "Date")
	fmt.Printf("  %-6s  %-6s  %-6s  %-4s  %s\n", "----", "-----", "----", "---", "----")

	// Print results
	for _, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-6d  %d:%02d    %-4s  %s\n",
			r.CardsHome, r.Moves, r.DurationSecs/60, r.DurationSecs%60, won, dateStr)
	}

	// Summary
	fmt.Println()
	stats, err := store.GameStats(gameID)
	if err == nil && stats.DealsCount > 0 {
		fmt.Printf("Deals: %d   Won: %d   Best: %d home   Avg moves: %.0f\n",
			stats.DealsCount, stats.Wins, stats.BestHome, stats.AvgMoves)
	}
}

// printOverview prints one summary line per deal mode that has results.
func printOverview(store *storage.Store) {
	all, err := store.AllGameStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No deals recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Statistics by deal mode:")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-5s  %-6s  %s\n", "Mode", "Deals", "Won", "Best", "Last played")
	fmt.Printf("  %-16s  %-6s  %-5s  %-6s  %s\n", "----", "-----", "---", "----", "-----------")

	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-16s  %-6d  %-5d  %-6d  %s\n",
			id, st.DealsCount, st.Wins, st.BestHome, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
