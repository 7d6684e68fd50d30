package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

// Board layout constants. The board is drawn at the top left of the view,
// under the title line, so mouse coordinates map to cells without
// measuring rendered output.
const (
	headerLines  = 2 // title + blank line
	boardBorder  = 1
	boardPadding = 1
	cellWidth    = 2 // letter + gap
)

// boardOrigin returns the screen position of the top-left cell.
func boardOrigin() (x, y int) {
	return boardBorder + boardPadding, headerLines + boardBorder
}

// cellAt maps a screen position to a board cell.
func cellAt(g wordsearch.Grid, sx, sy int) (wordsearch.Coord, bool) {
	ox, oy := boardOrigin()
	if sx < ox || sy < oy {
		return wordsearch.Coord{}, false
	}
	c := wordsearch.C((sx-ox)/cellWidth, sy-oy)
	if !g.InBounds(c) {
		return wordsearch.Coord{}, false
	}
	return c, true
}

// renderBoard draws the grid with per-cell styles.
func renderBoard(theme Theme, view wordsearch.BoardView, flags func(wordsearch.Coord) wordsearch.CellFlags, focus wordsearch.Coord, showFocus bool) string {
	var b strings.Builder
	for y, row := range view.Rows() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			style := theme.CellStyle(flags(cell.Coord), showFocus && cell.Coord == focus)
			b.WriteString(style.Render(wordsearch.DisplayLetter(cell.Letter)))
			b.WriteString(" ")
		}
	}
	return theme.Board.Render(b.String())
}

// joinPanels places the board and the word panel side by side.
func joinPanels(board, panel string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
