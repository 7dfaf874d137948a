package pacman

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestLatchHeldMostRecent(t *testing.T) {
	l := NewLatch(IntentHeld)

	if got := l.Intent(); got != core.DirNone {
		t.Errorf("Intent() before input = %v, expected none", got)
	}

	l.Handle(core.Press(core.KeyArrowRight))
	l.Handle(core.Press(core.KeyArrowUp))
	if got := l.Intent(); got != core.DirUp {
		t.Errorf("Intent() = %v, expected up (most recent)", got)
	}

	l.Handle(core.Release(core.KeyArrowUp))
	if got := l.Intent(); got != core.DirRight {
		t.Errorf("Intent() = %v, expected right (still held)", got)
	}

	l.Handle(core.Release(core.KeyArrowRight))
	if got := l.Intent(); got != core.DirNone {
		t.Errorf("Intent() = %v, expected none", got)
	}
}

func TestLatchRepeatRefreshesRecency(t *testing.T) {
	l := NewLatch(IntentHeld)
	l.Handle(core.Press(core.KeyArrowLeft))
	l.Handle(core.Press(core.KeyArrowDown))
	l.Handle(core.Press(core.KeyArrowLeft))

	if got := l.Intent(); got != core.DirLeft {
		t.Errorf("Intent() = %v, expected left", got)
	}
}

func TestLatchLatchedMode(t *testing.T) {
	l := NewLatch(IntentLatched)

	l.Handle(core.Press(core.KeyArrowDown))
	l.Handle(core.Release(core.KeyArrowDown))
	if got := l.Intent(); got != core.DirDown {
		t.Errorf("Intent() = %v, expected down after release", got)
	}

	l.Handle(core.Press("Space"))
	if got := l.Intent(); got != core.DirNone {
		t.Errorf("Intent() = %v, expected none after a non-arrow key", got)
	}
	if l.Last() != "Space" {
		t.Errorf("Last() = %q, expected Space", l.Last())
	}
}

func TestLatchHeldFlags(t *testing.T) {
	l := NewLatch(IntentHeld)
	l.Handle(core.Press(core.KeyArrowUp))
	l.Handle(core.Press("Enter"))

	if !l.Held(core.DirUp) {
		t.Error("Held(up) should be true")
	}
	if l.Held(core.DirDown) || l.Held(core.DirNone) {
		t.Error("only up should be held")
	}
	if got := l.Intent(); got != core.DirUp {
		t.Errorf("Intent() = %v, expected up; non-arrow keys do not affect held mode", got)
	}

	l.Reset()
	if l.Held(core.DirUp) || l.Last() != "" || l.Mode() != IntentHeld {
		t.Error("Reset() should clear keys and keep the mode")
	}
}

func TestParseIntentMode(t *testing.T) {
	tests := []struct {
		in   string
		mode IntentMode
		ok   bool
	}{
		{"held", IntentHeld, true},
		{"", IntentHeld, true},
		{"latched", IntentLatched, true},
		{"sticky", IntentHeld, false},
	}

	for _, tc := range tests {
		mode, err := ParseIntentMode(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseIntentMode(%q) error = %v, expected ok=%v", tc.in, err, tc.ok)
		}
		if mode != tc.mode {
			t.Errorf("ParseIntentMode(%q) = %v, expected %v", tc.in, mode, tc.mode)
		}
	}
}
