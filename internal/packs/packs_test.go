package packs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordfind/internal/registry"
)

func TestBuiltinPacksRegistered(t *testing.T) {
	for _, id := range []string{"demo", "animals", "colors"} {
		assert.True(t, registry.Exists(id), "pack %s should be registered", id)
	}

	demo, err := registry.Get("demo")
	require.NoError(t, err)
	assert.Equal(t, "laetitia", demo.SecretWord)
	assert.Equal(t, []string{
		"complex", "creative", "elegant", "farce", "jovial",
		"motive", "ordinate", "prudent", "news", "tender",
	}, demo.Words)
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte("title: Trees\nwords: [oak, ' elm ', '']\n"), "trees.yaml")
	require.NoError(t, err)
	assert.Equal(t, "trees", p.ID, "id defaults to the file name")
	assert.Equal(t, "Trees", p.Title)
	assert.Equal(t, []string{"oak", "elm"}, p.Words)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("words: []\n"), "empty.yaml")
	assert.Error(t, err)

	_, err = Parse([]byte("words: [unclosed\n"), "broken.yaml")
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test-birds.yaml"), []byte("words: [owl, wren]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	ids, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"test-birds"}, ids)

	p, err := registry.Get("test-birds")
	require.NoError(t, err)
	assert.Equal(t, []string{"owl", "wren"}, p.Words)

	// Loading again collides with the registered IDs.
	_, err = LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDirMissing(t *testing.T) {
	ids, err := LoadDir(filepath.Join(t.TempDir(), "none"))
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
