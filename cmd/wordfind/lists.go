package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordfind/internal/packs"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
)

var flagSecretWord string

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage saved word lists",
	Long: `Saved word lists live in the database next to your best times.
Without a subcommand, shows every saved list.

Examples:
  wordfind lists
  wordfind lists save pets cat dog hamster --secret fur
  wordfind lists import ./birds.yaml
  wordfind lists show pets
  wordfind lists rm pets`,
	Args: cobra.NoArgs,
	RunE: runLists,
}

var listsSaveCmd = &cobra.Command{
	Use:   "save <name> <words...>",
	Short: "Save a word list, replacing any list with the same name",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runListsSave,
}

var listsImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Save a word list from a pack YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runListsImport,
}

var listsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the words of a saved list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListsShow,
}

var listsRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Delete a saved list",
	Args:    cobra.ExactArgs(1),
	RunE:    runListsRm,
}

func init() {
	listsSaveCmd.Flags().StringVar(&flagSecretWord, "secret", "", "Secret word hidden in the spare cells")

	listsCmd.AddCommand(listsSaveCmd)
	listsCmd.AddCommand(listsImportCmd)
	listsCmd.AddCommand(listsShowCmd)
	listsCmd.AddCommand(listsRmCmd)
}

func runLists(_ *cobra.Command, _ []string) error {
	store, err := mustOpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	lists, err := store.Lists()
	if err != nil {
		return err
	}

	if len(lists) == 0 {
		fmt.Println("No saved lists.")
		fmt.Println()
		fmt.Println("Run 'wordfind lists save <name> <words...>' to save one.")
		return nil
	}

	maxNameLen := 4 // "Name" header
	for _, l := range lists {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxNameLen, "Name", "Words", "Updated")
	fmt.Printf("  %-*s  %5s  %s\n", maxNameLen, "----", "-----", "-------")
	for _, l := range lists {
		fmt.Printf("  %-*s  %5d  %s\n", maxNameLen, l.Name, l.Count, l.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runListsSave(_ *cobra.Command, args []string) error {
	return saveList(args[0], args[1:], flagSecretWord)
}

func runListsImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	p, err := packs.Parse(data, name)
	if err != nil {
		return err
	}
	return saveList(p.ID, p.Words, p.SecretWord)
}

func saveList(name string, words []string, secret string) error {
	store, err := mustOpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveList(name, words, secret); err != nil {
		return err
	}
	logger.Info("saved word list", "name", name, "words", len(words))
	fmt.Printf("Saved %q (%d words). Run 'wordfind play --list %s' to play it.\n", name, len(words), name)
	return nil
}

func runListsShow(_ *cobra.Command, args []string) error {
	store, err := mustOpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	l, err := store.List(args[0])
	if errors.Is(err, storage.ErrListNotFound) {
		return fmt.Errorf("no saved list named %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d words)\n", l.Name, len(l.Words))
	if l.SecretWord != "" {
		fmt.Printf("Secret word: %s\n", l.SecretWord)
	}
	fmt.Println()
	for _, w := range l.Words {
		fmt.Printf("  %s\n", w)
	}
	return nil
}

func runListsRm(_ *cobra.Command, args []string) error {
	store, err := mustOpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteList(args[0]); errors.Is(err, storage.ErrListNotFound) {
		return fmt.Errorf("no saved list named %q", args[0])
	} else if err != nil {
		return err
	}
	if err := store.ClearResults(storage.ListSource(args[0])); err != nil {
		logger.Warn("could not clear results", "list", args[0], "error", err)
	}
	fmt.Printf("Deleted %q.\n", args[0])
	return nil
}
