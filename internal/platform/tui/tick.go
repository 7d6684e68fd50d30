// Package tui provides the Bubble Tea integration for the word-search game.
// It handles the terminal UI loop, mouse and key mapping, and the SSH
// session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the elapsed-time display refreshes.
const clockInterval = time.Second

// TickMsg is sent to refresh the elapsed-time display.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
