package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordfind/internal/storage"
)

var (
	flagClearScores bool
	flagScoresList  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show best times for a word list",
	Long: `Display the 10 fastest solves of a pack or saved list. Puzzles finished
with the solution revealed do not count.

Without an argument, shows the configured default pack. Use --list for a
saved list.

Examples:
  wordfind scores
  wordfind scores animals
  wordfind scores --list pets --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded results")
	scoresCmd.Flags().StringVar(&flagScoresList, "list", "", "Saved word list name")
}

func runScores(_ *cobra.Command, args []string) error {
	source, title, hint := scoresSource(args, flagScoresList)

	store, err := mustOpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearResults(source); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", title)
		return nil
	}

	results, err := store.BestTimes(source, 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve results: %w", err)
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No finished puzzles yet.")
		fmt.Println()
		fmt.Printf("Play '%s' to set the first time!\n", hint)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %s\n", "Rank", "Time", "Words", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %s\n", "----", "----", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-6s  %-5s  %s\n",
			i+1,
			formatDuration(r.Duration),
			fmt.Sprintf("%d/%d", r.Found, r.Words),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

// scoresSource returns the results source to show, its display name and the
// command that plays it.
func scoresSource(args []string, listName string) (source, title, hint string) {
	if listName != "" {
		return storage.ListSource(listName), listName, "wordfind play --list " + listName
	}
	pack := appCfg.Pack
	if len(args) > 0 {
		pack = args[0]
	}
	return pack, pack, "wordfind play --pack " + pack
}

// formatDuration formats d as mm:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
