package wordsearch

import (
	"fmt"
	"strings"
)

// Coord identifies a cell by zero-based column and row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Blank is the letter stored in cells the engine left empty.
const Blank rune = 0

// Grid is a rectangular board of letters, indexed Grid[y][x].
type Grid [][]rune

// ParseGrid builds a Grid from rows of text. A '.' or ' ' is a blank cell.
// Rows must have equal length.
func ParseGrid(rows ...string) (Grid, error) {
	g := make(Grid, 0, len(rows))
	for y, row := range rows {
		line := make([]rune, 0, len(row))
		for _, r := range row {
			if r == '.' || r == ' ' {
				r = Blank
			}
			line = append(line, r)
		}
		if y > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("grid: row %d has %d cells, expected %d", y, len(line), len(g[0]))
		}
		g = append(g, line)
	}
	return g, nil
}

// MustParseGrid is ParseGrid for literals known to be valid.
func MustParseGrid(rows ...string) Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// InBounds returns true if the coordinate is inside the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < len(g) && c.X >= 0 && c.X < len(g[c.Y])
}

// Letter returns the letter at c, and false when c is off the grid.
func (g Grid) Letter(c Coord) (rune, bool) {
	if !g.InBounds(c) {
		return Blank, false
	}
	return g[c.Y][c.X], true
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]rune(nil), row...)
	}
	return out
}

// BlankCount returns the number of cells without a letter.
func (g Grid) BlankCount() int {
	n := 0
	for _, row := range g {
		for _, r := range row {
			if r == Blank {
				n++
			}
		}
	}
	return n
}

// String renders the grid as rows of upper-case letters, blanks as '.'.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, r := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if r == Blank {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strings.ToUpper(string(r)))
		}
	}
	return sb.String()
}

// CellFlags holds the presentation flags of a cell.
type CellFlags uint8

const (
	FlagSelected CellFlags = 1 << iota
	FlagFound
	FlagSolved
)

// Has reports whether all bits of f are set.
func (c CellFlags) Has(f CellFlags) bool {
	return c&f == f
}

// Marks is the flag state of a board, kept apart from the letters and
// keyed by cell index y*W+x.
type Marks struct {
	W        int
	H        int
	Flags    []CellFlags
	Complete bool
}

// NewMarks creates cleared marks for a w x h board.
func NewMarks(w, h int) Marks {
	return Marks{W: w, H: h, Flags: make([]CellFlags, w*h)}
}

func (m *Marks) index(c Coord) (int, bool) {
	if c.X < 0 || c.X >= m.W || c.Y < 0 || c.Y >= m.H {
		return 0, false
	}
	return c.Y*m.W + c.X, true
}

// Get returns the flags at c. Off-board cells have no flags.
func (m *Marks) Get(c Coord) CellFlags {
	i, ok := m.index(c)
	if !ok {
		return 0
	}
	return m.Flags[i]
}

// Set adds f to the flags at c.
func (m *Marks) Set(c Coord, f CellFlags) {
	if i, ok := m.index(c); ok {
		m.Flags[i] |= f
	}
}

// Unset removes f from the flags at c.
func (m *Marks) Unset(c Coord, f CellFlags) {
	if i, ok := m.index(c); ok {
		m.Flags[i] &^= f
	}
}

// ClearAll removes f from every cell.
func (m *Marks) ClearAll(f CellFlags) {
	for i := range m.Flags {
		m.Flags[i] &^= f
	}
}

// Count returns how many cells carry f.
func (m *Marks) Count(f CellFlags) int {
	n := 0
	for _, v := range m.Flags {
		if v.Has(f) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the marks.
func (m Marks) Clone() Marks {
	m.Flags = append([]CellFlags(nil), m.Flags...)
	return m
}
