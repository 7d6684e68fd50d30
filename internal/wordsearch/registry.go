package wordsearch

import (
	"sort"
	"strings"
)

// WordEntry is a target word and whether it has been found.
type WordEntry struct {
	Word  string
	Found bool
}

// Registry is the ordered list of target words. Insertion order is display
// order only; matching uses CollectActive.
type Registry struct {
	entries []WordEntry
}

// NewRegistry creates a registry holding words in the given order.
func NewRegistry(words ...string) *Registry {
	r := &Registry{}
	for _, w := range words {
		r.AddEntry(w)
	}
	return r
}

// AddEntry inserts word before the anchor, the "add word" slot that always
// trails the list. It does not touch an already-built grid.
func (r *Registry) AddEntry(word string) {
	r.entries = append(r.entries, WordEntry{Word: word})
}

// Remove deletes the entry at index i. Out-of-range indexes are ignored.
func (r *Registry) Remove(i int) {
	if i < 0 || i >= len(r.entries) {
		return
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
}

// Entries returns a copy of the entries in display order.
func (r *Registry) Entries() []WordEntry {
	return append([]WordEntry(nil), r.entries...)
}

// Len returns the number of entries, blank inputs included.
func (r *Registry) Len() int {
	return len(r.entries)
}

// CollectActive returns the lowercase, non-empty words sorted
// lexicographically. This is the list handed to the engine and used for
// matching.
func (r *Registry) CollectActive() []string {
	words := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		w := NormalizeWord(e.Word)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ResetFound clears every found flag, as done when a new grid is built.
func (r *Registry) ResetFound() {
	for i := range r.entries {
		r.entries[i].Found = false
	}
}

// MarkFound marks the first unfound entry matching word. It returns false
// if no such entry exists.
func (r *Registry) MarkFound(word string) bool {
	for i, e := range r.entries {
		if !e.Found && NormalizeWord(e.Word) == word {
			r.entries[i].Found = true
			return true
		}
	}
	return false
}

// IsFound reports whether an entry matching word is marked found.
func (r *Registry) IsFound(word string) bool {
	for _, e := range r.entries {
		if e.Found && NormalizeWord(e.Word) == word {
			return true
		}
	}
	return false
}

// FoundCount returns the number of found entries.
func (r *Registry) FoundCount() int {
	n := 0
	for _, e := range r.entries {
		if e.Found {
			n++
		}
	}
	return n
}

// NormalizeWord lower-cases and trims a word input.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
