// Package registry provides a global registry of word packs.
// Built-in packs register themselves in init() functions, allowing the CLI
// and the TUI to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Pack is a named list of words to hide in a puzzle.
type Pack struct {
	// ID is the unique identifier used on the command line (e.g., "animals").
	ID string

	// Title is a human-readable name for display (e.g., "Animals").
	Title string

	// Words are the target words in display order.
	Words []string

	// SecretWord, if set, fills the grid's spare cells and is revealed once
	// every word is found.
	SecretWord string
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
	Count int
}

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry.
// Typically called from an init() function.
// Panics if the pack is invalid or its ID is already registered.
func Register(p Pack) {
	if err := Add(p); err != nil {
		panic(err)
	}
}

// Add adds a pack to the registry, returning an error instead of panicking.
// Used for packs loaded at runtime from the user's directory.
func Add(p Pack) error {
	if p.ID == "" {
		return fmt.Errorf("registry: pack has no id")
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("registry: pack %q has no words", p.ID)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.ID]; exists {
		return fmt.Errorf("registry: pack %q already registered", p.ID)
	}
	if p.Title == "" {
		p.Title = p.ID
	}
	p.Words = append([]string(nil), p.Words...)
	packs[p.ID] = p
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: p.Title,
			Count: len(p.Words),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the pack with the given ID.
// Returns an error if the pack ID is not registered.
func Get(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("registry: unknown pack %q", id)
	}

	p.Words = append([]string(nil), p.Words...)
	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
