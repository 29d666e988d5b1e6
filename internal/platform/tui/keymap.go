package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-collector/internal/game"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	Move    key.Binding
	Up      key.Binding
	Down    key.Binding
	Focus   key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "cycle"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// screenHelp adapts the bindings to help.KeyMap for one screen.
type screenHelp struct {
	keys   KeyMap
	screen game.ScreenID
}

// ShortHelp returns the bindings relevant to the active screen.
func (h screenHelp) ShortHelp() []key.Binding {
	switch h.screen {
	case game.InGame:
		return []key.Binding{h.keys.Move, h.keys.Back, h.keys.Quit}
	case game.MainMenu:
		return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Select, h.keys.Quit}
	default:
		return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Select, h.keys.Back, h.keys.Quit}
	}
}

// FullHelp returns all bindings grouped by purpose.
func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Move},
		{h.keys.Up, h.keys.Down, h.keys.Focus, h.keys.Select},
		{h.keys.Back, h.keys.Quit},
	}
}

// movementKey returns the held-key name for a movement key press.
func movementKey(msg tea.KeyMsg) (string, bool) {
	switch s := msg.String(); s {
	case "up", "down", "left", "right", "w", "a", "s", "d":
		return s, true
	}
	return "", false
}
