package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

// isolate points the home directory and working directory at empty temp
// dirs so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "demo", cfg.Pack)
	assert.Equal(t, 12, cfg.Engine.Width)
	assert.Equal(t, 100, cfg.Engine.MaxAttempts)
	assert.Equal(t, 2, cfg.Engine.AllowedMissingWords)
	assert.True(t, cfg.Engine.FillBlanks)
	assert.Len(t, cfg.Engine.Orientations, 8)
	assert.True(t, cfg.Selection.ReorientFromStart)
	assert.Equal(t, ":23234", cfg.Server.Address)
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "engine:\n  width: 9\nselection:\n  reorient_from_start: false\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Engine.Width)
	assert.Equal(t, 12, cfg.Engine.Height, "unset keys keep their defaults")
	assert.False(t, cfg.Selection.ReorientFromStart)
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join("configs", fileName), "language: fr\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language, "local configs dir is used when no user file exists")

	writeFile(t, filepath.Join(home, ".wordfind", "configs", fileName), "language: de\n")

	cfg, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Language, "user file wins over local configs dir")
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("WORDFIND_ENGINE_WIDTH", "7")
	t.Setenv("WORDFIND_LANGUAGE", "fr")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Engine.Width)
	assert.Equal(t, "fr", cfg.Language)
}

func TestLoadFlagOverride(t *testing.T) {
	isolate(t)
	t.Setenv("WORDFIND_LANGUAGE", "de")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("lang", "en", "")
	flags.String("db", "~/.wordfind/wordfind.db", "")
	require.NoError(t, flags.Parse([]string{"--lang", "fr"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language, "changed flag wins over env")
	assert.Equal(t, "~/.wordfind/wordfind.db", cfg.Storage.Path)
}

func TestLoadRejectsUnknownOrientation(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "engine:\n  orientations: [sideways]\n")

	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "sideways")
}

func TestWriteThenLoad(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Engine.SecretWord = "laetitia"
	cfg.Theme.Found = "#00ff00"

	path := filepath.Join(t.TempDir(), "nested", "wordfind.yaml")
	require.NoError(t, Write(cfg, path))

	loaded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestBuildOptions(t *testing.T) {
	cfg := Default()
	cfg.Engine.Orientations = []string{"horizontal", "DiagonalUp"}

	opts, err := cfg.Engine.BuildOptions(42)
	require.NoError(t, err)
	assert.Equal(t, wordsearch.BuildOptions{
		AllowedMissingWords: 2,
		FillBlanks:          true,
		MaxAttempts:         100,
		Width:               12,
		Height:              12,
		Orientations:        []wordsearch.Orientation{wordsearch.Horizontal, wordsearch.DiagonalUp},
		Seed:                42,
	}, opts)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, got, tc.in)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, []string{"horizontal", "vertical", "diagonal"}, easy.Engine.Orientations)
	assert.Equal(t, 10, easy.Engine.Width)

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, Default(), normal)

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	assert.Equal(t, 15, hard.Engine.Width)
	assert.Zero(t, hard.Engine.AllowedMissingWords)
	_, err := hard.Engine.BuildOptions(0)
	assert.NoError(t, err)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)
	assert.Equal(t, filepath.Join(home, ".wordfind", "x.db"), ExpandHome("~/.wordfind/x.db"))
	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
}
