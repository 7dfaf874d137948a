package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Action is a host-level command derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove        // Steering key; the mapped core.Key goes to the game
	ActionQuit
	ActionRestart
	ActionScreenshot
	ActionCopy
	ActionHelp
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Screenshot, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game keys and host actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message. Steering keys report ActionMove with the
// arrow key the game understands; everything else reports a host action and
// an empty key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, Action) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return "", ActionQuit
	case key.Matches(msg, km.keys.Up):
		return core.KeyArrowUp, ActionMove
	case key.Matches(msg, km.keys.Down):
		return core.KeyArrowDown, ActionMove
	case key.Matches(msg, km.keys.Left):
		return core.KeyArrowLeft, ActionMove
	case key.Matches(msg, km.keys.Right):
		return core.KeyArrowRight, ActionMove
	case key.Matches(msg, km.keys.Restart):
		return "", ActionRestart
	case key.Matches(msg, km.keys.Screenshot):
		return "", ActionScreenshot
	case key.Matches(msg, km.keys.Copy):
		return "", ActionCopy
	case key.Matches(msg, km.keys.Help):
		return "", ActionHelp
	}
	return "", ActionNone
}
