package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "fr"}, Languages())
}

func TestTranslateEnglish(t *testing.T) {
	l := New("en")

	got := l.Translate(wordsearch.MsgSelectionStart, map[string]any{"Row": 2, "Column": 3, "Letter": "q"})
	assert.Equal(t, "Start at row 2, column 3, letter q.", got)
	assert.Equal(t, "Found cat.", l.Translate(wordsearch.MsgWordFound, map[string]any{"Word": "cat"}))
	assert.Equal(t, "Word Find", l.T("ui.title"))
}

func TestTranslateFrench(t *testing.T) {
	l := New("fr")

	assert.Equal(t, "Sélection annulée.", l.Translate(wordsearch.MsgSelectionCancelled, nil))
	assert.Equal(t, "Mots", l.T("ui.words"))
}

// Every announcement the game can make must have an English text.
func TestEveryMessageHasEnglish(t *testing.T) {
	l := New("en")
	ids := []wordsearch.MessageID{
		wordsearch.MsgSelectionStart,
		wordsearch.MsgSelectionBadEnd,
		wordsearch.MsgSelectionCancelled,
		wordsearch.MsgWordFound,
		wordsearch.MsgNoWordFound,
		wordsearch.MsgBoardComplete,
		wordsearch.MsgSolutionRevealed,
	}
	for _, id := range ids {
		assert.NotEqual(t, string(id), l.Translate(id, map[string]any{}), "missing translation for %s", id)
	}
}

func TestBuildFailedSuggestsFewerWords(t *testing.T) {
	assert.Equal(t, "Could not build a puzzle: no room. Try fewer words.",
		New("en").TData("ui.build_failed", map[string]any{"Error": "no room"}))
	assert.Contains(t, New("fr").TData("ui.build_failed", map[string]any{"Error": "x"}), "moins de mots")
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "Word Find", New("de").T("ui.title"), "unknown language falls back to English")
	assert.Equal(t, "Word Find", New("???").T("ui.title"), "malformed language falls back to English")
	assert.Equal(t, "no.such.id", New("en").T("no.such.id"))
}

func TestGameUsesLocalizer(t *testing.T) {
	g := wordsearch.New(nil, wordsearch.Options{Rules: wordsearch.DefaultRules(), Translator: New("fr")})
	g.Registry().AddEntry("ab")
	g.Load(wordsearch.MustParseGrid("ab"))

	g.Start(wordsearch.C(0, 0))
	g.MoveOver(wordsearch.C(1, 0))
	g.Release(wordsearch.C(1, 0))

	assert.Equal(t, "Tous les mots sont trouvés !", g.Announcer().Message())
}
