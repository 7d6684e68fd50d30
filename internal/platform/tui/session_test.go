package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordfind/internal/config"
	"github.com/vovakirdan/tui-wordfind/internal/i18n"
	"github.com/vovakirdan/tui-wordfind/internal/registry"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
)

const sessionPack = "tui-session-test"

func init() {
	registry.Register(registry.Pack{
		ID:    sessionPack,
		Title: "Session Test",
		Words: []string{"cat", "cog"},
	})
}

func newSession(t *testing.T) (SessionModel, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.Engine.Width = 6
	cfg.Engine.Height = 6

	return NewSessionModel(SessionOptions{
		Config:      cfg,
		Store:       store,
		Width:       100,
		Height:      30,
		NoClipboard: true,
	}), store
}

func step(m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSourcesIncludeSavedLists(t *testing.T) {
	_, store := newSession(t)
	require.NoError(t, store.SaveList("mine", []string{"red", "blue"}, ""))

	sources, err := Sources(store)
	require.NoError(t, err)

	var pack, saved *Source
	for i := range sources {
		switch sources[i].ID {
		case sessionPack:
			pack = &sources[i]
		case storage.ListSource("mine"):
			saved = &sources[i]
		}
	}
	require.NotNil(t, pack)
	require.NotNil(t, saved)
	assert.False(t, pack.Saved)
	assert.True(t, saved.Saved)
	assert.Equal(t, 2, saved.Count)

	words, _, err := saved.Resolve(store)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, words)

	words, _, err = pack.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cog"}, words)

	_, _, err = saved.Resolve(nil)
	assert.Error(t, err)
}

func TestSessionMenuToBoardAndBack(t *testing.T) {
	m, _ := newSession(t)

	// Move the cursor onto the test pack.
	for i, item := range m.menu.items {
		if item.ID == sessionPack {
			m.menu.cursor = i
		}
	}

	m, _ = step(m, keyMsg(tea.KeyEnter))
	require.Equal(t, screenBoard, m.screen)
	require.NotNil(t, m.board)
	assert.True(t, m.board.Game().Ready())
	assert.Equal(t, sessionPack, m.board.opts.Source)
	assert.Equal(t, 2, m.board.Game().Registry().Len())

	// Copy is not available over ssh.
	m, _ = step(m, keyMsg(tea.KeyCtrlY))
	assert.Equal(t, "Clipboard unavailable.", m.board.Game().Announcer().Message())

	m, _ = step(m, runeKey('b'))
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.board)
	assert.Nil(t, m.menu.Selected())
}

func TestSessionScoreboard(t *testing.T) {
	m, _ := newSession(t)

	m, _ = step(m, keyMsg(tea.KeyTab))
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "BEST TIMES")

	m, _ = step(m, keyMsg(tea.KeyEsc))
	assert.Equal(t, screenMenu, m.screen)
	assert.False(t, m.menu.WantsScoreboard())
}

func TestSessionQuit(t *testing.T) {
	m, _ := newSession(t)

	m, cmd := step(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestScoreboardShowsBestTimes(t *testing.T) {
	_, store := newSession(t)
	_, err := store.RecordResult(storage.Result{Source: sessionPack, Words: 2, Found: 2, Duration: 75 * time.Second})
	require.NoError(t, err)

	sources := []Source{{ID: sessionPack, Title: "Session Test", Count: 2}}
	sb := NewScoreboardModel(sources, store, i18n.New("en"), 100, 30)

	require.Len(t, sb.results, 1)
	rows := sb.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"#1", "01:15", "2/2"}, []string(rows[0][:3]))
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", truncateTitle("short", 10))
	assert.Equal(t, "Anima.", truncateTitle("Animals", 6))
	assert.Equal(t, "Écla.", truncateTitle("Éclairs", 5))
}
