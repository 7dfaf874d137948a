package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		key    core.Key
		action Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyArrowUp, ActionMove},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyArrowDown, ActionMove},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyArrowLeft, ActionMove},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyArrowRight, ActionMove},
		{"w", runeKey("w"), core.KeyArrowUp, ActionMove},
		{"a", runeKey("a"), core.KeyArrowLeft, ActionMove},
		{"s", runeKey("s"), core.KeyArrowDown, ActionMove},
		{"d", runeKey("d"), core.KeyArrowRight, ActionMove},
		{"q", runeKey("q"), "", ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "", ActionQuit},
		{"r", runeKey("r"), "", ActionRestart},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, "", ActionScreenshot},
		{"ctrl+y", tea.KeyMsg{Type: tea.KeyCtrlY}, "", ActionCopy},
		{"?", runeKey("?"), "", ActionHelp},
		{"unbound", runeKey("z"), "", ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, action := km.MapKey(tc.msg)
			if k != tc.key || action != tc.action {
				t.Errorf("MapKey(%q) = (%q, %v), expected (%q, %v)", tc.msg.String(), k, action, tc.key, tc.action)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("FullHelp() lists %d bindings, expected 9", total)
	}
}
