package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordfind/internal/i18n"
	"github.com/vovakirdan/tui-wordfind/internal/platform/tui"
)

var (
	flagPack       string
	flagList       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [words...]",
	Short: "Solve a puzzle",
	Long: `Build a puzzle and solve it in the terminal.

Words come from the command line, a saved list (--list) or a pack (--pack,
default from the config).

Controls:
  Mouse drag      - Select a word
  Arrows/hjkl     - Move focus
  Enter/Space     - Start a word, then pick its last letter
  Esc             - Cancel the selection
  S               - Reveal the solution
  N               - New grid
  A               - Add a word
  X               - Remove a word
  Ctrl+Y          - Copy the grid
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - 10x10, words only read forwards
  normal - Config's grid and directions
  hard   - 15x15, all eight directions, every word placed

Examples:
  wordfind play
  wordfind play --pack animals --difficulty easy
  wordfind play --list pets
  wordfind play tiger zebra otter
  wordfind play --lang fr --seed 7`,
	Annotations: map[string]string{interactiveAnnotation: ""},
	RunE:        runPlay,
}

func init() {
	addSourceFlags(playCmd)
}

// addSourceFlags adds the flags that pick and shape a puzzle.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPack, "pack", "", "Word pack ID (default from config)")
	cmd.Flags().StringVar(&flagList, "list", "", "Saved word list name")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := appCfg
	if err := applyDifficulty(&cfg, flagDifficulty); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	src, err := resolveWords(args, flagList, cfg.Pack, store)
	if err != nil {
		return err
	}

	logger.Info("starting puzzle", "source", src.ID, "words", len(src.Words), "seed", flagSeed)

	_, err = tui.Run(tui.Options{
		Config:     cfg,
		Source:     src.ID,
		Title:      src.Title,
		Words:      src.Words,
		SecretWord: src.SecretWord,
		Seed:       flagSeed,
		Store:      store,
		Logger:     logger,
		Localizer:  i18n.New(cfg.Language),
	})
	return err
}
