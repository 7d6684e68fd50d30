package wordsearch

import (
	"fmt"
)

// Options configures a Game.
type Options struct {
	Rules      Rules
	Translator Translator
}

// DefaultOptions returns options with the default rules and English text.
func DefaultOptions() Options {
	return Options{Rules: DefaultRules()}
}

// Game binds the registry, the engine and a built board together and
// accepts input events from both the pointer and the keyboard protocol.
// It is not safe for concurrent use; the platform feeds it one event at a
// time.
type Game struct {
	engine    Engine
	rules     Rules
	registry  *Registry
	announcer *Announcer

	grid   Grid
	view   BoardView
	marks  Marks
	active []string
	sel    Selection
	ready  bool
}

// New creates a game with an empty registry and no board.
func New(engine Engine, opts Options) *Game {
	return &Game{
		engine:    engine,
		rules:     opts.Rules,
		registry:  &Registry{},
		announcer: NewAnnouncer(opts.Translator),
	}
}

// Registry returns the word registry. Edits take effect on the next Build.
func (g *Game) Registry() *Registry {
	return g.registry
}

// Announcer returns the live status slot.
func (g *Game) Announcer() *Announcer {
	return g.announcer
}

// Build asks the engine for a new grid over the registry's active words and
// resets all play state. On failure no board is kept and Ready reports false.
func (g *Game) Build(opts BuildOptions) error {
	g.registry.ResetFound()
	g.sel = Selection{}
	g.announcer.Clear()

	words := g.registry.CollectActive()
	grid, err := g.engine.Build(words, opts)
	if err != nil {
		g.ready = false
		g.grid = nil
		g.view = BoardView{}
		g.marks = Marks{}
		g.active = nil
		return fmt.Errorf("build puzzle: %w", err)
	}

	g.load(grid, words)
	return nil
}

// Load installs an already generated grid, bypassing the engine.
func (g *Game) Load(grid Grid) {
	g.registry.ResetFound()
	g.sel = Selection{}
	g.announcer.Clear()
	g.load(grid, g.registry.CollectActive())
}

func (g *Game) load(grid Grid, words []string) {
	g.grid = grid
	g.view = Render(grid)
	g.marks = NewMarks(grid.Width(), grid.Height())
	g.active = words
	g.ready = true
}

// Ready reports whether a board has been built.
func (g *Game) Ready() bool {
	return g.ready
}

// Grid returns the current grid.
func (g *Game) Grid() Grid {
	return g.grid
}

// View returns the rendered board.
func (g *Game) View() BoardView {
	return g.view
}

// Flags returns the presentation flags of a cell.
func (g *Game) Flags(c Coord) CellFlags {
	return g.marks.Get(c)
}

// Complete reports whether every word has been found.
func (g *Game) Complete() bool {
	return g.marks.Complete
}

// Selection returns the current selection.
func (g *Game) Selection() Selection {
	return g.sel
}

// ActiveWords returns the words still to be found.
func (g *Game) ActiveWords() []string {
	return append([]string(nil), g.active...)
}

func (g *Game) env() Env {
	return Env{Grid: g.grid, Active: g.active, Rules: g.rules}
}

// Start begins a pointer selection at c. Valid only while idle.
func (g *Game) Start(c Coord) {
	if !g.ready || !g.sel.Idle() {
		return
	}
	g.apply(g.sel.Begin(g.env(), c))
}

// MoveOver feeds a pointer drag over c.
func (g *Game) MoveOver(c Coord) {
	if !g.ready {
		return
	}
	g.apply(g.sel.MoveOver(g.env(), c))
}

// Release ends a pointer selection and commits the word if it matches.
func (g *Game) Release(Coord) {
	if !g.ready {
		return
	}
	g.finish(false)
}

// Activate handles a keyboard activation of c: the first one picks the
// start cell, the second one picks the end cell and finishes the word.
func (g *Game) Activate(c Coord) {
	if !g.ready {
		return
	}
	if g.sel.Idle() {
		next := g.sel.Begin(g.env(), c)
		if next.Idle() {
			return
		}
		g.apply(next)
		r, _ := g.grid.Letter(c)
		g.announcer.AnnounceID(MsgSelectionStart, map[string]any{
			"Row":    DisplayRow(c),
			"Column": DisplayColumn(c),
			"Letter": LetterName(r),
		})
		return
	}

	next, ok := g.sel.WalkTo(g.env(), c)
	if !ok {
		g.announcer.AnnounceID(MsgSelectionBadEnd, nil)
		return
	}
	g.apply(next)
	g.finish(true)
}

// Cancel abandons a selection in progress.
func (g *Game) Cancel() {
	if !g.ready || g.sel.Idle() {
		return
	}
	g.apply(Selection{})
	g.announcer.AnnounceID(MsgSelectionCancelled, nil)
}

// finish commits or rejects the accumulated word and returns to idle.
func (g *Game) finish(announceMiss bool) {
	wasSelecting := g.sel.Selecting
	out, next := g.sel.Finish(g.active)
	if out.Matched {
		for _, c := range out.Path {
			g.marks.Set(c, FlagFound)
		}
		g.registry.MarkFound(out.Word)
		g.active = removeWord(g.active, out.Word)
		if len(g.active) == 0 {
			g.marks.Complete = true
			g.announcer.AnnounceID(MsgBoardComplete, nil)
		} else {
			g.announcer.AnnounceID(MsgWordFound, map[string]any{"Word": out.Word})
		}
	} else if announceMiss && wasSelecting {
		g.announcer.AnnounceID(MsgNoWordFound, nil)
	}
	g.apply(next)
}

// apply installs a new selection and syncs the selected flags with its path.
func (g *Game) apply(s Selection) {
	g.sel = s
	g.marks.ClearAll(FlagSelected)
	for _, c := range s.Path {
		g.marks.Set(c, FlagSelected)
	}
}

// Snapshot is a copy of the full game state for rendering and tests.
type Snapshot struct {
	Ready     bool
	Grid      Grid
	Marks     Marks
	Selection Selection
	Entries   []WordEntry
	Active    []string
	Message   string
}

// Snapshot returns the current state. Mutating it does not affect the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ready:     g.ready,
		Grid:      g.grid.Clone(),
		Marks:     g.marks.Clone(),
		Selection: g.sel.clone(),
		Entries:   g.registry.Entries(),
		Active:    g.ActiveWords(),
		Message:   g.announcer.Message(),
	}
}
