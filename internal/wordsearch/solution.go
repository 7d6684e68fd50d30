package wordsearch

// RevealAll asks the engine to solve the board and marks every word the
// player has not found yet as solved. Found words keep their found styling.
// It returns the number of words revealed.
func (g *Game) RevealAll() int {
	if !g.ready {
		return 0
	}
	if !g.sel.Idle() {
		g.apply(Selection{})
	}

	// Occurrences the player already traced keep their found styling.
	revealed := 0
	var traced []SolutionEntry
	for _, entry := range g.engine.Solve(g.grid, g.active) {
		if !g.registry.hasUnfound(entry.Word) {
			continue
		}
		if g.allFound(entry.Cells()) {
			traced = append(traced, entry)
			continue
		}
		for _, c := range entry.Cells() {
			g.marks.Set(c, FlagSolved)
		}
		g.registry.MarkFound(entry.Word)
		revealed++
	}
	for _, entry := range traced {
		if g.registry.MarkFound(entry.Word) {
			revealed++
		}
	}
	g.announcer.AnnounceID(MsgSolutionRevealed, nil)
	return revealed
}

// hasUnfound reports whether some entry matching word is still unfound.
func (r *Registry) hasUnfound(word string) bool {
	for _, e := range r.entries {
		if !e.Found && NormalizeWord(e.Word) == word {
			return true
		}
	}
	return false
}

func (g *Game) allFound(cells []Coord) bool {
	for _, c := range cells {
		if !g.marks.Get(c).Has(FlagFound) {
			return false
		}
	}
	return true
}
