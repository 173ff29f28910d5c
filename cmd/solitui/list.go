package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FBastiaan04/solitui/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available deal modes",
	Long:  `Shows a list of all registered deal modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No deal modes available.")
		return
	}

	fmt.Println("Available deal modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'solitui play <id>' to start a deal.")
}
