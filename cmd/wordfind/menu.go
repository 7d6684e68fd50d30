package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordfind/internal/i18n"
	"github.com/vovakirdan/tui-wordfind/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a word list and play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a pack or saved list.
Press b on the board to return to the menu, Tab in the menu for best times.

Examples:
  wordfind menu
  wordfind menu --difficulty hard
  wordfind menu --lang fr`,
	Annotations: map[string]string{interactiveAnnotation: ""},
	RunE:        runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := appCfg
	if err := applyDifficulty(&cfg, flagDifficulty); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	loc := i18n.New(cfg.Language)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	for {
		sources, err := tui.Sources(store)
		if err != nil {
			logger.Warn("could not list saved word lists", "error", err)
		}

		menuResult, err := tui.RunMenu(sources, loc)
		if err != nil {
			return err
		}
		if menuResult.Width > 0 {
			width, height = menuResult.Width, menuResult.Height
		}

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(sources, store, loc, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		src := menuResult.Source
		words, secret, err := src.Resolve(store)
		if err != nil {
			logger.Warn("could not open word list", "source", src.ID, "error", err)
			continue
		}

		// A fresh grid each time unless a seed was given
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		back, err := tui.Run(tui.Options{
			Config:     cfg,
			Source:     src.ID,
			Title:      src.Title,
			Words:      words,
			SecretWord: secret,
			Seed:       seed,
			Store:      store,
			Logger:     logger,
			Localizer:  loc,
			AllowBack:  true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
			continue
		}
		if !back {
			return nil
		}

		// Loop back to menu
	}
}
