package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordfind/internal/i18n"
	"github.com/vovakirdan/tui-wordfind/internal/registry"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
)

// Source is a playable word list: a registered pack or a saved list.
type Source struct {
	ID    string
	Title string
	Count int
	Saved bool
}

// Sources returns registered packs followed by the lists saved in store.
func Sources(store *storage.Store) ([]Source, error) {
	packs := registry.List()
	out := make([]Source, 0, len(packs))
	for _, p := range packs {
		out = append(out, Source{ID: p.ID, Title: p.Title, Count: p.Count})
	}

	if store == nil {
		return out, nil
	}
	lists, err := store.Lists()
	if err != nil {
		return out, err
	}
	for _, l := range lists {
		out = append(out, Source{ID: storage.ListSource(l.Name), Title: l.Name, Count: l.Count, Saved: true})
	}
	return out, nil
}

// Resolve loads the words and secret word of a source.
func (s Source) Resolve(store *storage.Store) (words []string, secretWord string, err error) {
	if !s.Saved {
		p, err := registry.Get(s.ID)
		if err != nil {
			return nil, "", err
		}
		return p.Words, p.SecretWord, nil
	}
	name, ok := storage.ListName(s.ID)
	if !ok {
		return nil, "", fmt.Errorf("source %q is not a saved list", s.ID)
	}
	if store == nil {
		return nil, "", fmt.Errorf("list %q: no storage", name)
	}
	l, err := store.List(name)
	if err != nil {
		return nil, "", err
	}
	return l.Words, l.SecretWord, nil
}

// MenuModel is the Bubble Tea model for the word list picker.
type MenuModel struct {
	items          []Source
	cursor         int
	width          int
	height         int
	loc            *i18n.Localizer
	quitting       bool
	selected       *Source // Set when user selects a list
	openScoreboard bool    // True if user pressed Tab for best times
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []Source, loc *i18n.Localizer, width, height int) MenuModel {
	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		loc:    loc,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the board
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	current := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.loc.T("ui.title"))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.loc.T("ui.choose"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(dim.Render(m.loc.T("ui.no_sources")), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = current
		}

		meta := m.loc.TData("ui.word_count", map[string]any{"Count": item.Count})
		if item.Saved {
			meta += ", " + m.loc.T("ui.saved")
		}

		line := style.Render(cursor+item.Title) + " " + dim.Render("("+meta+")")
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dim.Render(m.loc.T("ui.menu_help")), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected source, or nil if none selected.
func (m MenuModel) Selected() *Source {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested best times.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Source          Source
	Width           int
	Height          int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(items []Source, loc *i18n.Localizer) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(items, loc, 80, 24),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{Width: m.width, Height: m.height}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Source = *m.Selected()
	}

	return result, nil
}
