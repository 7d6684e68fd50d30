package wordsearch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxWalkSteps caps the keyboard line walk against malformed input.
const maxWalkSteps = 1000

// Rules tunes the selection state machine.
type Rules struct {
	// ReorientFromStart lets a drag change direction whenever the pointer
	// is adjacent to the start cell, discarding the path built so far.
	ReorientFromStart bool
}

// DefaultRules returns the rules the game ships with.
func DefaultRules() Rules {
	return Rules{ReorientFromStart: true}
}

// Env is the read-only context a transition runs against.
type Env struct {
	Grid   Grid
	Active []string // unfound words, normalized and sorted
	Rules  Rules
}

// Selection is the in-progress word selection. It is a value: every
// transition returns a new Selection and leaves its receiver untouched.
type Selection struct {
	Selecting   bool
	Start       Coord // valid only while Selecting
	Path        []Coord
	Orientation Orientation
	Word        string
}

// Idle reports whether no selection is in progress.
func (s Selection) Idle() bool {
	return !s.Selecting
}

// Last returns the last cell of the path.
func (s Selection) Last() (Coord, bool) {
	if len(s.Path) == 0 {
		return Coord{}, false
	}
	return s.Path[len(s.Path)-1], true
}

func (s Selection) indexOf(c Coord) int {
	for i, p := range s.Path {
		if p == c {
			return i
		}
	}
	return -1
}

// Begin starts a selection at c. It is a no-op unless the selection is idle
// or c is off the grid.
func (s Selection) Begin(env Env, c Coord) Selection {
	if s.Selecting {
		return s
	}
	r, ok := env.Grid.Letter(c)
	if !ok {
		return s
	}
	return Selection{
		Selecting: true,
		Start:     c,
		Path:      []Coord{c},
		Word:      letterKey(r),
	}
}

// MoveOver handles the pointer entering c during a drag.
func (s Selection) MoveOver(env Env, c Coord) Selection {
	if !s.Selecting || !env.Grid.InBounds(c) {
		return s
	}
	last, _ := s.Last()
	if last == c {
		return s
	}
	next := s.clone()

	// Retracing toward the start shrinks the selection.
	if k := next.indexOf(c); k >= 0 {
		next = next.truncate(k + 1)
	}

	// A cell adjacent to the start restarts the path in its direction.
	if env.Rules.ReorientFromStart {
		if o, ok := InferAdjacentOrientation(next.Start.X, next.Start.Y, c.X, c.Y); ok {
			next = next.truncate(1)
			next.Orientation = o
		}
	}

	last, _ = next.Last()
	o, ok := InferAdjacentOrientation(last.X, last.Y, c.X, c.Y)
	if !ok {
		if next.changed(s) {
			return next
		}
		return s
	}
	if next.Orientation != NoOrientation && next.Orientation != o {
		return next
	}
	next.Orientation = o
	return next.Extend(env, c)
}

// Extend appends c when the accumulated word plus its letter is still a
// prefix of some active word. Otherwise the cell is silently left out and
// the gesture continues.
func (s Selection) Extend(env Env, c Coord) Selection {
	r, ok := env.Grid.Letter(c)
	if !ok {
		return s
	}
	candidate := s.Word + letterKey(r)
	for _, w := range env.Active {
		if strings.HasPrefix(w, candidate) {
			next := s.clone()
			next.Path = append(next.Path, c)
			next.Word = candidate
			return next
		}
	}
	return s
}

// WalkTo extends the selection along the straight line from the start to
// target, as the keyboard protocol does. It returns false, leaving the
// selection unchanged, when target is not in the start's row, column or
// diagonal.
func (s Selection) WalkTo(env Env, target Coord) (Selection, bool) {
	if !s.Selecting {
		return s, false
	}
	o, ok := InferLineOrientation(s.Start.X, s.Start.Y, target.X, target.Y)
	if !ok {
		return s, false
	}
	next := s.clone()
	next.Orientation = o
	for i := 1; i <= maxWalkSteps; i++ {
		x, y := Step(o, s.Start.X, s.Start.Y, i)
		c := C(x, y)
		if !env.Grid.InBounds(c) {
			break
		}
		next = next.Extend(env, c)
		if c == target {
			break
		}
	}
	return next, true
}

// Outcome is the result of finishing a selection.
type Outcome struct {
	Word    string
	Path    []Coord
	Matched bool
}

// Finish evaluates the accumulated word against active and resets to idle.
func (s Selection) Finish(active []string) (Outcome, Selection) {
	out := Outcome{Word: s.Word, Path: append([]Coord(nil), s.Path...)}
	if s.Selecting && s.Word != "" {
		for _, w := range active {
			if w == s.Word {
				out.Matched = true
				break
			}
		}
	}
	return out, Selection{}
}

// Len returns the number of letters in the accumulated word.
func (s Selection) Len() int {
	return utf8.RuneCountInString(s.Word)
}

func (s Selection) clone() Selection {
	s.Path = append([]Coord(nil), s.Path...)
	return s
}

// truncate keeps the first n cells and their letters. A single remaining
// cell has no direction.
func (s Selection) truncate(n int) Selection {
	if n >= len(s.Path) {
		return s
	}
	if n <= 1 {
		s.Orientation = NoOrientation
	}
	s.Path = s.Path[:n]
	runes := []rune(s.Word)
	if n < len(runes) {
		s.Word = string(runes[:n])
	}
	return s
}

func (s Selection) changed(prev Selection) bool {
	if len(s.Path) != len(prev.Path) || s.Orientation != prev.Orientation {
		return true
	}
	for i := range s.Path {
		if s.Path[i] != prev.Path[i] {
			return true
		}
	}
	return false
}

// letterKey is the normalized form a cell letter takes in the word.
func letterKey(r rune) string {
	return string(unicode.ToLower(r))
}

// removeWord drops the first occurrence of w from words.
func removeWord(words []string, w string) []string {
	for i, v := range words {
		if v == w {
			out := make([]string, 0, len(words)-1)
			out = append(out, words[:i]...)
			return append(out, words[i+1:]...)
		}
	}
	return words
}
