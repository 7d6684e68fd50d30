// Package wordsearch provides the word-search board controller: orientation
// geometry, board rendering, the selection state machine, the solution
// presenter and the word registry.
//
// The package is UI-agnostic. Every transition runs synchronously and the
// platform layer feeds it one input event at a time.
package wordsearch

import "strings"

// Orientation is one of the 8 directions a word may be read along.
type Orientation string

const (
	Horizontal     Orientation = "horizontal"
	HorizontalBack Orientation = "horizontalBack"
	Vertical       Orientation = "vertical"
	VerticalUp     Orientation = "verticalUp"
	Diagonal       Orientation = "diagonal"
	DiagonalBack   Orientation = "diagonalBack"
	DiagonalUp     Orientation = "diagonalUp"
	DiagonalUpBack Orientation = "diagonalUpBack"
)

// NoOrientation is the zero value, used while no direction is locked.
const NoOrientation Orientation = ""

// Orientations lists all directions in the order adjacency inference checks them.
var Orientations = []Orientation{
	Horizontal,
	HorizontalBack,
	Vertical,
	VerticalUp,
	Diagonal,
	DiagonalBack,
	DiagonalUp,
	DiagonalUpBack,
}

// Delta returns the (dx, dy) offset of a single step.
// Y increases downward (screen coordinates).
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case Horizontal:
		return 1, 0
	case HorizontalBack:
		return -1, 0
	case Vertical:
		return 0, 1
	case VerticalUp:
		return 0, -1
	case Diagonal:
		return 1, 1
	case DiagonalBack:
		return -1, 1
	case DiagonalUp:
		return 1, -1
	case DiagonalUpBack:
		return -1, -1
	default:
		return 0, 0
	}
}

// Reverse returns the paired back direction.
func (o Orientation) Reverse() Orientation {
	dx, dy := o.Delta()
	if r, ok := fromSigns(-dx, -dy); ok {
		return r
	}
	return NoOrientation
}

// String returns the orientation name.
func (o Orientation) String() string {
	if o == NoOrientation {
		return "none"
	}
	return string(o)
}

// ParseOrientation maps a direction name to its Orientation.
func ParseOrientation(name string) (Orientation, bool) {
	for _, o := range Orientations {
		if strings.EqualFold(string(o), name) {
			return o, true
		}
	}
	return NoOrientation, false
}

// Step returns the cell i steps away from (x, y) along o.
// No bounds checking: callers detect leaving the grid by a failed lookup.
func Step(o Orientation, x, y, i int) (int, int) {
	dx, dy := o.Delta()
	return x + dx*i, y + dy*i
}

// InferAdjacentOrientation returns the direction whose single step from
// (x1, y1) lands exactly on (x2, y2).
func InferAdjacentOrientation(x1, y1, x2, y2 int) (Orientation, bool) {
	for _, o := range Orientations {
		nx, ny := Step(o, x1, y1, 1)
		if nx == x2 && ny == y2 {
			return o, true
		}
	}
	return NoOrientation, false
}

// InferLineOrientation returns the direction from (x1, y1) to (x2, y2) for
// points any distance apart, provided they share a row, a column or a true
// 45 degree diagonal.
func InferLineOrientation(x1, y1, x2, y2 int) (Orientation, bool) {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return NoOrientation, false
	}
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return NoOrientation, false
	}
	return fromSigns(sign(dx), sign(dy))
}

func fromSigns(sx, sy int) (Orientation, bool) {
	switch {
	case sx == 1 && sy == 0:
		return Horizontal, true
	case sx == -1 && sy == 0:
		return HorizontalBack, true
	case sx == 0 && sy == 1:
		return Vertical, true
	case sx == 0 && sy == -1:
		return VerticalUp, true
	case sx == 1 && sy == 1:
		return Diagonal, true
	case sx == -1 && sy == 1:
		return DiagonalBack, true
	case sx == 1 && sy == -1:
		return DiagonalUp, true
	case sx == -1 && sy == -1:
		return DiagonalUpBack, true
	}
	return NoOrientation, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
