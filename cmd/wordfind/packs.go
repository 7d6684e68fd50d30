package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordfind/internal/registry"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List all available word packs",
	Long: `Shows the built-in word packs and the packs loaded from
~/.wordfind/packs/*.yaml.`,
	Run: runPacks,
}

func runPacks(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Words", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, p := range packs {
		marker := " "
		if p.ID == appCfg.Pack {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %5d  %s\n", marker, maxIDLen, p.ID, p.Count, p.Title)
	}

	fmt.Println()
	fmt.Println("* default pack. Run 'wordfind play --pack <id>' to play a pack.")
}
