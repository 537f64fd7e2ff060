package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available arenas",
	Long:  `Shows a list of all arenas (board sizes) registered in the game.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	arenas := registry.List()

	if len(arenas) == 0 {
		fmt.Println("No arenas available.")
		return
	}

	fmt.Println("Available arenas:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range arenas {
		maxIDLen = max(maxIDLen, len(a.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "ID", "Board", "Terminal", "Title")
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "--", "-----", "--------", "-----")

	for _, a := range arenas {
		w, h := game.RequiredSize(game.ArenaGrid(a))
		fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, a.ID,
			fmt.Sprintf("%dx%d", a.Width, a.Height),
			fmt.Sprintf("%dx%d", w, h),
			a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play an arena.")
}
