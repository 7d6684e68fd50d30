package wordsearch

import (
	"fmt"
	"strings"
	"unicode"
)

// CellView is one addressable, focusable unit of a rendered board.
type CellView struct {
	Coord  Coord
	Letter rune
	Label  string // accessible label, 1-based row and column
}

// BoardView is the rendered form of a Grid.
type BoardView struct {
	W     int
	H     int
	Cells []CellView // row-major, index y*W+x
}

// Render produces one CellView per grid cell. Rendering the same grid twice
// yields equal views.
func Render(g Grid) BoardView {
	v := BoardView{W: g.Width(), H: g.Height()}
	v.Cells = make([]CellView, 0, v.W*v.H)
	for y, row := range g {
		for x, r := range row {
			c := C(x, y)
			v.Cells = append(v.Cells, CellView{
				Coord:  c,
				Letter: r,
				Label:  fmt.Sprintf("%s, Row %d, Column %d", LetterName(r), DisplayRow(c), DisplayColumn(c)),
			})
		}
	}
	return v
}

// At returns the view of the cell at c.
func (v BoardView) At(c Coord) (CellView, bool) {
	if c.X < 0 || c.X >= v.W || c.Y < 0 || c.Y >= v.H {
		return CellView{}, false
	}
	return v.Cells[c.Y*v.W+c.X], true
}

// Rows returns the cell views grouped by row.
func (v BoardView) Rows() [][]CellView {
	rows := make([][]CellView, v.H)
	for y := range rows {
		rows[y] = v.Cells[y*v.W : (y+1)*v.W]
	}
	return rows
}

// Text returns the board as plain text, one row per line.
func (v BoardView) Text() string {
	var sb strings.Builder
	for y, row := range v.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(DisplayLetter(cell.Letter))
		}
	}
	return sb.String()
}

// DisplayRow returns the 1-based row announced to the user.
func DisplayRow(c Coord) int { return c.Y + 1 }

// DisplayColumn returns the 1-based column announced to the user.
func DisplayColumn(c Coord) int { return c.X + 1 }

// LetterName returns the letter as spoken, or "blank".
func LetterName(r rune) string {
	if r == Blank || unicode.IsSpace(r) {
		return "blank"
	}
	return string(r)
}

// DisplayLetter returns the upper-cased letter, or a space for blanks.
func DisplayLetter(r rune) string {
	if r == Blank {
		return " "
	}
	return string(unicode.ToUpper(r))
}
