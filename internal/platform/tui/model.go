package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordfind/internal/config"
	"github.com/vovakirdan/tui-wordfind/internal/engine"
	"github.com/vovakirdan/tui-wordfind/internal/i18n"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

// Options configures a board model.
type Options struct {
	Config     config.Config
	Source     string // results are recorded under it
	Title      string
	Words      []string
	SecretWord string // overrides the configured secret word when set
	Seed       int64  // 0 = time based

	Store     *storage.Store     // optional
	Logger    *log.Logger        // optional
	Localizer *i18n.Localizer    // optional, defaults to the configured language
	Clipboard func(string) error // defaults to the system clipboard
	Now       func() time.Time   // defaults to time.Now

	// AllowBack lets the back key leave the board for a menu.
	AllowBack bool
}

// editMode is what the word input is collecting, if anything.
type editMode int

const (
	editNone editMode = iota
	editAdd
	editRemove
)

// Model is the Bubble Tea model for one word-search board.
type Model struct {
	opts      Options
	game      *wordsearch.Game
	buildOpts wordsearch.BuildOptions
	builds    int
	wordCount int

	theme Theme
	keys  KeyMap
	help  help.Model
	input textinput.Model
	log   *log.Logger
	loc   *i18n.Localizer

	focus    wordsearch.Coord
	dragging bool
	editing  editMode
	width    int
	height   int

	started  time.Time
	elapsed  time.Duration
	finished bool

	inSession  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a board model and builds the first puzzle. A puzzle that
// cannot be built is reported in the status line, not as an error.
func NewModel(opts Options) (Model, error) {
	buildOpts, err := opts.Config.Engine.BuildOptions(opts.Seed)
	if err != nil {
		return Model{}, err
	}
	if opts.SecretWord != "" {
		buildOpts.SecretWord = opts.SecretWord
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Localizer == nil {
		opts.Localizer = i18n.New(opts.Config.Language)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	game := wordsearch.New(engine.New(), wordsearch.Options{
		Rules:      opts.Config.Selection.Rules(),
		Translator: opts.Localizer,
	})
	for _, w := range opts.Words {
		game.Registry().AddEntry(w)
	}

	input := textinput.New()
	input.Placeholder = opts.Localizer.T("ui.add_word")
	input.CharLimit = 32
	input.Width = 20

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:      opts,
		game:      game,
		buildOpts: buildOpts,
		theme:     NewTheme(opts.Config.Theme),
		keys:      DefaultKeyMap(),
		help:      h,
		input:     input,
		log:       opts.Logger,
		loc:       opts.Localizer,
		inSession: opts.AllowBack,
	}
	m.rebuild()
	return m, nil
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.handleInput(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.finished {
			m.elapsed = m.opts.Now().Sub(m.started)
		}
		return m, tickCmd(clockInterval)
	}

	return m, nil
}

// handleKey processes keyboard input on the board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionBack:
		if m.inSession {
			m.backToMenu = true
			return m, tea.Quit
		}
	case ActionUp:
		m.moveFocus(0, -1)
	case ActionDown:
		m.moveFocus(0, 1)
	case ActionLeft:
		m.moveFocus(-1, 0)
	case ActionRight:
		m.moveFocus(1, 0)
	case ActionActivate:
		m.game.Activate(m.focus)
		m.checkFinished()
	case ActionCancel:
		m.dragging = false
		m.game.Cancel()
	case ActionReveal:
		m.reveal()
	case ActionRebuild:
		m.rebuild()
	case ActionAddWord:
		return m, m.edit(editAdd, "ui.add_word")
	case ActionRemoveWord:
		return m, m.edit(editRemove, "ui.remove_word")
	case ActionCopy:
		m.copyBoard()
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) edit(mode editMode, placeholder string) tea.Cmd {
	m.editing = mode
	m.input.Reset()
	m.input.Placeholder = m.loc.T(placeholder)
	return m.input.Focus()
}

// handleInput feeds the word input. Enter commits, esc aborts.
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		mode := m.editing
		m.editing = editNone
		m.input.Blur()
		word := strings.TrimSpace(m.input.Value())
		if word == "" {
			return m, nil
		}
		if mode == editRemove {
			m.removeWord(word)
		} else {
			m.game.Registry().AddEntry(word)
			m.game.Announcer().Announce(m.loc.TData("ui.word_added", map[string]any{"Word": word}))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleMouse maps pointer events onto the continuous selection protocol.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	c, onBoard := cellAt(m.game.Grid(), msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onBoard {
			return m, nil
		}
		m.focus = c
		if m.game.Selection().Idle() {
			m.game.Start(c)
			m.dragging = true
		}
	case tea.MouseActionMotion:
		if m.dragging && onBoard {
			m.focus = c
			m.game.MoveOver(c)
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.game.Release(c)
			m.checkFinished()
		}
	}
	return m, nil
}

// removeWord drops the first list entry matching word. The current grid is
// kept until the next rebuild.
func (m *Model) removeWord(word string) {
	data := map[string]any{"Word": word}
	want := wordsearch.NormalizeWord(word)
	for i, e := range m.game.Registry().Entries() {
		if wordsearch.NormalizeWord(e.Word) == want {
			m.game.Registry().Remove(i)
			m.game.Announcer().Announce(m.loc.TData("ui.word_removed", data))
			return
		}
	}
	m.game.Announcer().Announce(m.loc.TData("ui.word_not_listed", data))
}

func (m *Model) moveFocus(dx, dy int) {
	if !m.game.Ready() {
		return
	}
	g := m.game.Grid()
	x := min(max(m.focus.X+dx, 0), g.Width()-1)
	y := min(max(m.focus.Y+dy, 0), g.Height()-1)
	m.focus = wordsearch.C(x, y)
}

// rebuild generates a new grid over the current word list.
func (m *Model) rebuild() {
	opts := m.buildOpts
	if opts.Seed != 0 {
		opts.Seed += int64(m.builds)
	}
	m.builds++

	m.focus = wordsearch.Coord{}
	m.dragging = false
	m.finished = false
	m.elapsed = 0
	m.started = m.opts.Now()

	if err := m.game.Build(opts); err != nil {
		m.log.Warn("could not build puzzle", "source", m.opts.Source, "error", err)
		m.game.Announcer().Announce(m.loc.TData("ui.build_failed", map[string]any{"Error": err.Error()}))
		return
	}
	m.wordCount = len(m.game.ActiveWords())
	blanks := m.game.Grid().BlankCount()
	m.log.Debug("puzzle built",
		"source", m.opts.Source,
		"words", m.wordCount,
		"width", m.game.Grid().Width(),
		"height", m.game.Grid().Height(),
		"blanks", blanks,
	)
	if blanks > 0 {
		m.game.Announcer().Announce(m.loc.TData("ui.built_blanks", map[string]any{"Count": blanks}))
		return
	}
	m.game.Announcer().Announce(m.loc.T("ui.built"))
}

func (m *Model) reveal() {
	if !m.game.Ready() {
		return
	}
	m.dragging = false
	found := m.game.Registry().FoundCount()
	m.game.RevealAll()
	if !m.finished {
		m.finish(true, found)
	}
}

func (m *Model) checkFinished() {
	if m.finished || !m.game.Complete() {
		return
	}
	m.finish(false, m.game.Registry().FoundCount())
}

// finish stops the clock and records the result.
func (m *Model) finish(revealed bool, found int) {
	m.finished = true
	m.elapsed = m.opts.Now().Sub(m.started)
	if m.opts.Store == nil || m.opts.Source == "" {
		return
	}
	_, err := m.opts.Store.RecordResult(storage.Result{
		Source:   m.opts.Source,
		Words:    m.wordCount,
		Found:    found,
		Revealed: revealed,
		Duration: m.elapsed,
	})
	if err != nil {
		m.log.Warn("could not record result", "source", m.opts.Source, "error", err)
	}
}

func (m *Model) copyBoard() {
	if !m.game.Ready() {
		return
	}
	if err := m.opts.Clipboard(m.game.View().Text()); err != nil {
		m.log.Debug("clipboard unavailable", "error", err)
		m.game.Announcer().Announce(m.loc.T("ui.copy_failed"))
		return
	}
	m.game.Announcer().Announce(m.loc.T("ui.copied"))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.loc.T("ui.title")
	if m.opts.Title != "" {
		title += " - " + m.opts.Title
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render(formatElapsed(m.elapsed)))
	b.WriteString("\n\n")

	if m.game.Ready() {
		board := renderBoard(m.theme, m.game.View(), m.game.Flags, m.focus, !m.dragging)
		b.WriteString(joinPanels(board, m.renderWords()))
		b.WriteString("\n")
		if cell, ok := m.game.View().At(m.focus); ok {
			b.WriteString(m.theme.Label.Render(cell.Label))
		}
	} else {
		b.WriteString(m.theme.Status.Render(m.loc.T("ui.no_board")))
	}
	b.WriteString("\n")

	status := m.game.Announcer().Message()
	if m.game.Complete() {
		b.WriteString(m.theme.Complete.Render(status))
	} else {
		b.WriteString(m.theme.Status.Render(status))
	}
	b.WriteString("\n\n")

	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// renderWords draws the word list panel with the add-word anchor last.
func (m Model) renderWords() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.loc.T("ui.words")))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render(m.loc.TData("ui.found_count", map[string]any{
		"Found": m.game.Registry().FoundCount(),
		"Total": m.wordCount,
	})))
	b.WriteString("\n\n")

	for _, e := range m.game.Registry().Entries() {
		if strings.TrimSpace(e.Word) == "" {
			continue
		}
		if e.Found {
			b.WriteString(m.theme.WordFound.Render(e.Word))
		} else {
			b.WriteString(m.theme.WordActive.Render(e.Word))
		}
		b.WriteString("\n")
	}

	if m.editing != editNone {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.theme.Label.Render("+ " + m.loc.T("ui.add_word")))
	}
	return m.theme.Panel.Render(b.String())
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Game returns the underlying game.
func (m Model) Game() *wordsearch.Game {
	return m.game
}

// Focus returns the focused cell.
func (m Model) Focus() wordsearch.Coord {
	return m.focus
}

// Elapsed returns the time spent on the current board.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single board. It reports whether
// the player asked to go back to the menu rather than quit.
func Run(opts Options) (back bool, err error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag selection
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
