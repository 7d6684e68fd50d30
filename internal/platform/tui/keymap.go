package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a board command derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionActivate
	ActionCancel
	ActionReveal
	ActionRebuild
	ActionAddWord
	ActionRemoveWord
	ActionCopy
	ActionHelp
	ActionBack
	ActionQuit
)

// KeyMap defines the key bindings for the board.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Activate   key.Binding
	Cancel     key.Binding
	Reveal     key.Binding
	Rebuild    key.Binding
	AddWord    key.Binding
	RemoveWord key.Binding
	Copy       key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Cancel, k.Reveal, k.Rebuild, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Cancel, k.Reveal, k.Rebuild},
		{k.AddWord, k.RemoveWord, k.Copy, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/end word"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "solve"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new grid"),
		),
		AddWord: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add word"),
		),
		RemoveWord: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove word"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy grid"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a board action.
// This centralizes key bindings and makes them testable.
func (k KeyMap) MapKey(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Up):
		return ActionUp
	case key.Matches(msg, k.Down):
		return ActionDown
	case key.Matches(msg, k.Left):
		return ActionLeft
	case key.Matches(msg, k.Right):
		return ActionRight
	case key.Matches(msg, k.Activate):
		return ActionActivate
	case key.Matches(msg, k.Cancel):
		return ActionCancel
	case key.Matches(msg, k.Reveal):
		return ActionReveal
	case key.Matches(msg, k.Rebuild):
		return ActionRebuild
	case key.Matches(msg, k.AddWord):
		return ActionAddWord
	case key.Matches(msg, k.RemoveWord):
		return ActionRemoveWord
	case key.Matches(msg, k.Copy):
		return ActionCopy
	case key.Matches(msg, k.Help):
		return ActionHelp
	case key.Matches(msg, k.Back):
		return ActionBack
	}
	return ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
