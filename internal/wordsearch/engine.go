package wordsearch

import "errors"

// ErrConstruction is returned by an Engine that cannot place the words
// within its attempt budget.
var ErrConstruction = errors.New("no valid placement found")

// BuildOptions configures puzzle construction.
type BuildOptions struct {
	AllowedMissingWords int  // target words that may be left out
	MaxGridGrowth       int  // extra rows/columns allowed beyond the minimum size
	FillBlanks          bool // false leaves uncovered cells blank
	SecretWord          string
	AllowExtraBlanks    bool // keep blanks left over after the secret word
	MaxAttempts         int
	Width               int
	Height              int

	Orientations []Orientation // nil means all 8
	Seed         int64         // 0 picks a time based seed
}

// SolutionEntry locates one placed word.
type SolutionEntry struct {
	Word        string
	Orientation Orientation
	X           int
	Y           int
}

// Cells returns the coordinates the entry covers.
func (e SolutionEntry) Cells() []Coord {
	n := len([]rune(e.Word))
	cells := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		x, y := Step(e.Orientation, e.X, e.Y, i)
		cells = append(cells, C(x, y))
	}
	return cells
}

// Engine generates and solves puzzles.
type Engine interface {
	// Build lays words out on a new grid. Failures wrap ErrConstruction.
	Build(words []string, opts BuildOptions) (Grid, error)

	// Solve locates every word it can find in grid.
	Solve(grid Grid, words []string) []SolutionEntry
}
