package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordfind/internal/config"
	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

// Theme contains the visual styles for the board and its panels.
type Theme struct {
	// Cell styles, applied by presentation flag
	Letter   lipgloss.Style
	Focus    lipgloss.Style
	Selected lipgloss.Style
	Found    lipgloss.Style
	Solved   lipgloss.Style

	// Panels
	Title      lipgloss.Style
	Board      lipgloss.Style
	Panel      lipgloss.Style
	WordFound  lipgloss.Style
	WordActive lipgloss.Style
	Status     lipgloss.Style
	Label      lipgloss.Style
	Help       lipgloss.Style
	Complete   lipgloss.Style
}

// NewTheme builds a theme from configured colors.
func NewTheme(tc config.ThemeConfig) Theme {
	return Theme{
		Letter:   lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Letter)),
		Focus:    lipgloss.NewStyle().Reverse(true).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(tc.Selected)),
		Found:    lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Found)).Bold(true),
		Solved:   lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Solved)).Italic(true),

		Title: lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Focus)).Bold(true),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, boardPadding),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		WordFound:  lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Found)).Strikethrough(true),
		WordActive: lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Letter)),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Status)),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Complete:   lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Found)).Bold(true),
	}
}

// CellStyle picks the style for a cell. Focus wins, then the selection,
// then solved, then found.
func (t Theme) CellStyle(flags wordsearch.CellFlags, focused bool) lipgloss.Style {
	switch {
	case focused:
		return t.Focus
	case flags.Has(wordsearch.FlagSelected):
		return t.Selected
	case flags.Has(wordsearch.FlagSolved):
		return t.Solved
	case flags.Has(wordsearch.FlagFound):
		return t.Found
	}
	return t.Letter
}
