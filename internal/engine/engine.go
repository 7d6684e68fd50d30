// Package engine generates and solves word-search puzzles.
//
// Words are placed longest first at random legal positions; letters may be
// shared where two words cross. A failed layout is retried up to
// MaxAttempts times per grid size, after which the grid grows by one row and
// one column until MaxGridGrowth is exhausted.
package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

// fillerLetters are the letters used for random fill.
const fillerLetters = "abcdefghijklmnoprstuvwy"

// Defaults applied when options leave a field at zero.
const (
	DefaultMaxAttempts = 3
	DefaultSize        = 8
)

// Generator implements wordsearch.Engine.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

var _ wordsearch.Engine = (*Generator)(nil)

// Result is the outcome of a successful build.
type Result struct {
	Grid    wordsearch.Grid
	Placed  []wordsearch.SolutionEntry
	Missing []string // words left out under AllowedMissingWords
}

// Build lays words out on a new grid.
func (gen *Generator) Build(words []string, opts wordsearch.BuildOptions) (wordsearch.Grid, error) {
	res, err := gen.Generate(words, opts)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Generate is Build with placement details.
func (gen *Generator) Generate(words []string, opts wordsearch.BuildOptions) (Result, error) {
	opts = withDefaults(opts)
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ordered := make([]string, 0, len(words))
	for _, w := range words {
		if w = wordsearch.NormalizeWord(w); w != "" {
			ordered = append(ordered, w)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i]) > utf8.RuneCountInString(ordered[j])
	})

	longest := 0
	if len(ordered) > 0 {
		longest = utf8.RuneCountInString(ordered[0])
	}
	w, h := max(opts.Width, longest), max(opts.Height, longest)

	for growth := 0; growth <= opts.MaxGridGrowth; growth++ {
		for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
			if res, ok := fill(ordered, w+growth, h+growth, opts, rng); ok {
				return res, nil
			}
		}
	}
	return Result{}, fmt.Errorf("engine: %dx%d grid with %d words after %d attempts: %w",
		w+opts.MaxGridGrowth, h+opts.MaxGridGrowth, len(ordered), opts.MaxAttempts, wordsearch.ErrConstruction)
}

func withDefaults(opts wordsearch.BuildOptions) wordsearch.BuildOptions {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Width <= 0 {
		opts.Width = DefaultSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultSize
	}
	if opts.MaxGridGrowth < 0 {
		opts.MaxGridGrowth = 0
	}
	if opts.AllowedMissingWords < 0 {
		opts.AllowedMissingWords = 0
	}
	if len(opts.Orientations) == 0 {
		opts.Orientations = wordsearch.Orientations
	}
	return opts
}

// fill makes one layout attempt on a w x h grid.
func fill(words []string, w, h int, opts wordsearch.BuildOptions, rng *rand.Rand) (Result, bool) {
	grid := make(wordsearch.Grid, h)
	for y := range grid {
		grid[y] = make([]rune, w)
	}

	var res Result
	for _, word := range words {
		locs := locations(grid, word, opts.Orientations)
		if len(locs) == 0 {
			res.Missing = append(res.Missing, word)
			if len(res.Missing) > opts.AllowedMissingWords {
				return Result{}, false
			}
			continue
		}
		loc := locs[rng.Intn(len(locs))]
		place(grid, word, loc)
		res.Placed = append(res.Placed, loc)
	}

	if !fillBlanks(grid, opts, rng) {
		return Result{}, false
	}
	res.Grid = grid
	return res, true
}

// locations returns every position where word fits on grid.
func locations(grid wordsearch.Grid, word string, orientations []wordsearch.Orientation) []wordsearch.SolutionEntry {
	letters := []rune(word)
	var locs []wordsearch.SolutionEntry
	for _, o := range orientations {
		for y := range grid {
			for x := range grid[y] {
				if fits(grid, letters, o, x, y, true) {
					locs = append(locs, wordsearch.SolutionEntry{Word: word, Orientation: o, X: x, Y: y})
				}
			}
		}
	}
	return locs
}

// fits reports whether letters can be written from (x, y) along o. With
// allowBlank, empty cells accept any letter; without it every letter must
// already be on the grid.
func fits(grid wordsearch.Grid, letters []rune, o wordsearch.Orientation, x, y int, allowBlank bool) bool {
	for i, r := range letters {
		nx, ny := wordsearch.Step(o, x, y, i)
		cur, ok := grid.Letter(wordsearch.C(nx, ny))
		if !ok {
			return false
		}
		if cur == r {
			continue
		}
		if !allowBlank || cur != wordsearch.Blank {
			return false
		}
	}
	return true
}

func place(grid wordsearch.Grid, word string, loc wordsearch.SolutionEntry) {
	for i, r := range []rune(word) {
		x, y := wordsearch.Step(loc.Orientation, loc.X, loc.Y, i)
		grid[y][x] = r
	}
}

// fillBlanks writes filler letters into uncovered cells. It fails when a
// secret word does not fit in the remaining blanks.
func fillBlanks(grid wordsearch.Grid, opts wordsearch.BuildOptions, rng *rand.Rand) bool {
	if !opts.FillBlanks {
		return true
	}
	secret := []rune(strings.ToLower(strings.ReplaceAll(opts.SecretWord, " ", "")))
	if len(secret) > grid.BlankCount() {
		return false
	}
	next := 0
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] != wordsearch.Blank {
				continue
			}
			switch {
			case next < len(secret):
				grid[y][x] = secret[next]
				next++
			case len(secret) > 0 && opts.AllowExtraBlanks:
				// leave blank
			default:
				grid[y][x] = rune(fillerLetters[rng.Intn(len(fillerLetters))])
			}
		}
	}
	return true
}

// Solve locates every word that appears on grid.
func (gen *Generator) Solve(grid wordsearch.Grid, words []string) []wordsearch.SolutionEntry {
	found, _ := gen.SolveAll(grid, words)
	return found
}

// SolveAll returns the located words and the words that could not be found.
func (gen *Generator) SolveAll(grid wordsearch.Grid, words []string) (found []wordsearch.SolutionEntry, notFound []string) {
	for _, word := range words {
		word = wordsearch.NormalizeWord(word)
		if word == "" {
			continue
		}
		if loc, ok := locate(grid, word); ok {
			found = append(found, loc)
			continue
		}
		notFound = append(notFound, word)
	}
	return found, notFound
}

func locate(grid wordsearch.Grid, word string) (wordsearch.SolutionEntry, bool) {
	letters := []rune(word)
	for _, o := range wordsearch.Orientations {
		for y := range grid {
			for x := range grid[y] {
				if fits(grid, letters, o, x, y, false) {
					return wordsearch.SolutionEntry{Word: word, Orientation: o, X: x, Y: y}, true
				}
			}
		}
	}
	return wordsearch.SolutionEntry{}, false
}
