package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordfind/internal/config"
	"github.com/vovakirdan/tui-wordfind/internal/engine"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

func TestResolveWords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.SaveList("pets", []string{"cat", "dog"}, "fur"))

	t.Run("args win", func(t *testing.T) {
		src, err := resolveWords([]string{"tiger", "otter"}, "pets", "demo", store)
		require.NoError(t, err)
		assert.Empty(t, src.ID)
		assert.Equal(t, []string{"tiger", "otter"}, src.Words)
	})

	t.Run("saved list", func(t *testing.T) {
		src, err := resolveWords(nil, "pets", "demo", store)
		require.NoError(t, err)
		assert.Equal(t, "list:pets", src.ID)
		assert.Equal(t, "pets", src.Title)
		assert.Equal(t, []string{"cat", "dog"}, src.Words)
		assert.Equal(t, "fur", src.SecretWord)
	})

	t.Run("missing list", func(t *testing.T) {
		_, err := resolveWords(nil, "birds", "demo", store)
		assert.ErrorContains(t, err, `unknown list "birds"`)
	})

	t.Run("list without database", func(t *testing.T) {
		_, err := resolveWords(nil, "pets", "demo", nil)
		assert.Error(t, err)
	})

	t.Run("built-in pack", func(t *testing.T) {
		src, err := resolveWords(nil, "", "demo", nil)
		require.NoError(t, err)
		assert.Equal(t, "demo", src.ID)
		assert.Len(t, src.Words, 10)
		assert.Equal(t, "laetitia", src.SecretWord)
	})

	t.Run("unknown pack", func(t *testing.T) {
		_, err := resolveWords(nil, "", "nope", nil)
		assert.ErrorContains(t, err, `unknown pack "nope"`)
	})

	t.Run("nothing", func(t *testing.T) {
		_, err := resolveWords(nil, "", "", nil)
		assert.Error(t, err)
	})
}

func TestApplyDifficulty(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, applyDifficulty(&cfg, "hard"))
	assert.Equal(t, 15, cfg.Engine.Width)

	cfg = config.Default()
	require.NoError(t, applyDifficulty(&cfg, ""))
	assert.Equal(t, config.Default().Engine, cfg.Engine)

	assert.Error(t, applyDifficulty(&cfg, "brutal"))
}

func TestPrintPuzzle(t *testing.T) {
	res := engine.Result{
		Grid: wordsearch.MustParseGrid("cat", "xox", "xxg"),
		Placed: []wordsearch.SolutionEntry{
			{Word: "cog", Orientation: wordsearch.Diagonal, X: 0, Y: 0},
			{Word: "cat", Orientation: wordsearch.Horizontal, X: 0, Y: 0},
		},
		Missing: []string{"dog"},
	}

	t.Run("stacked", func(t *testing.T) {
		var buf bytes.Buffer
		printPuzzle(&buf, res, true, 0)
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "C A T\nX O X\nX X G\n\nC A T\n  O  \n    G\n"), out)
		assert.Contains(t, out, "Words: cat, cog")
		assert.Regexp(t, `cat\s+1\s+1\s+horizontal`, out)
		assert.Regexp(t, `cog\s+1\s+1\s+diagonal`, out)
		assert.Contains(t, out, "Left out: dog")
	})

	t.Run("side by side", func(t *testing.T) {
		var buf bytes.Buffer
		printPuzzle(&buf, res, true, 80)
		assert.True(t, strings.HasPrefix(buf.String(), "C A T    C A T\n"), buf.String())
	})

	t.Run("no solution", func(t *testing.T) {
		var buf bytes.Buffer
		printPuzzle(&buf, res, false, 80)
		out := buf.String()
		assert.Equal(t, "C A T\nX O X\nX X G\n\nWords: cat, cog\n", out)
	})
}

func TestScoresSource(t *testing.T) {
	source, title, hint := scoresSource([]string{"demo"}, "")
	assert.Equal(t, "demo", source)
	assert.Equal(t, "demo", title)
	assert.Equal(t, "wordfind play --pack demo", hint)

	source, title, hint = scoresSource(nil, "demo")
	assert.Equal(t, "list:demo", source)
	assert.Equal(t, "demo", title)
	assert.Equal(t, "wordfind play --list demo", hint)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "02:05", formatDuration(125_400_000_000))
}
