package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordfind/internal/config"
	"github.com/vovakirdan/tui-wordfind/internal/registry"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
)

// wordSource is the word list a puzzle is built from.
type wordSource struct {
	ID         string // results source; empty for ad-hoc words
	Title      string
	Words      []string
	SecretWord string
}

// resolveWords picks the words for a puzzle. Words given on the command line
// win, then a saved list, then the pack (which defaults to the configured
// one).
func resolveWords(args []string, listName, packID string, store *storage.Store) (wordSource, error) {
	if len(args) > 0 {
		return wordSource{Title: strings.Join(args, ", "), Words: args}, nil
	}

	if listName != "" {
		if store == nil {
			return wordSource{}, fmt.Errorf("cannot load list %q: database unavailable", listName)
		}
		l, err := store.List(listName)
		if errors.Is(err, storage.ErrListNotFound) {
			return wordSource{}, fmt.Errorf("unknown list %q (run 'wordfind lists' to see saved lists)", listName)
		}
		if err != nil {
			return wordSource{}, err
		}
		return wordSource{ID: storage.ListSource(l.Name), Title: l.Name, Words: l.Words, SecretWord: l.SecretWord}, nil
	}

	if packID == "" {
		return wordSource{}, errors.New("no words: pass words, --list or --pack")
	}
	p, err := registry.Get(packID)
	if err != nil {
		return wordSource{}, fmt.Errorf("unknown pack %q (run 'wordfind packs' to see available packs)", packID)
	}
	return wordSource{ID: p.ID, Title: p.Title, Words: p.Words, SecretWord: p.SecretWord}, nil
}

// applyDifficulty adjusts cfg for a --difficulty flag value.
func applyDifficulty(cfg *config.Config, name string) error {
	preset, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	config.ApplyPreset(cfg, preset)
	return nil
}
