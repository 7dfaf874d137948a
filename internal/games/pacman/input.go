package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// IntentMode selects how key state becomes a movement intent.
type IntentMode int

const (
	// IntentHeld steers toward the most recently pressed arrow that is still
	// held. With no arrow held the player stops.
	IntentHeld IntentMode = iota
	// IntentLatched steers toward the last key pressed, held or not. A
	// non-arrow last key leaves the velocity untouched, so the player coasts.
	IntentLatched
)

// ParseIntentMode maps a config value to a mode.
func ParseIntentMode(s string) (IntentMode, error) {
	switch s {
	case config.IntentHeld, "":
		return IntentHeld, nil
	case config.IntentLatched:
		return IntentLatched, nil
	default:
		return IntentHeld, fmt.Errorf("pacman: unknown intent mode %q", s)
	}
}

// String returns the config name of the mode.
func (m IntentMode) String() string {
	if m == IntentLatched {
		return config.IntentLatched
	}
	return config.IntentHeld
}

const numDirections = int(core.DirRight) + 1

// Latch records key events between ticks. Events only change flags; the
// player reads the resulting intent once per tick.
type Latch struct {
	mode    IntentMode
	held    [numDirections]bool
	pressed [numDirections]uint64 // Press sequence number per direction
	seq     uint64
	last    core.Key
}

// NewLatch creates a latch with no keys held.
func NewLatch(mode IntentMode) *Latch {
	return &Latch{mode: mode}
}

// Mode returns the intent mode.
func (l *Latch) Mode() IntentMode {
	return l.mode
}

// Handle applies one key event. Key-down of any key becomes the last key;
// only the four arrows change held state.
func (l *Latch) Handle(ev core.KeyEvent) {
	d := core.DirectionOf(ev.Key)
	if !ev.Down {
		if d != core.DirNone {
			l.held[d] = false
		}
		return
	}

	l.last = ev.Key
	if d != core.DirNone {
		l.seq++
		l.held[d] = true
		l.pressed[d] = l.seq
	}
}

// Held reports whether the arrow for d is down.
func (l *Latch) Held(d core.Direction) bool {
	if d <= core.DirNone || int(d) >= numDirections {
		return false
	}
	return l.held[d]
}

// Last returns the most recently pressed key, or "" before any press.
func (l *Latch) Last() core.Key {
	return l.last
}

// Intent returns the direction to steer toward this tick.
func (l *Latch) Intent() core.Direction {
	if l.mode == IntentLatched {
		return core.DirectionOf(l.last)
	}

	best := core.DirNone
	var bestSeq uint64
	for d := core.DirUp; int(d) < numDirections; d++ {
		if l.held[d] && l.pressed[d] > bestSeq {
			best, bestSeq = d, l.pressed[d]
		}
	}
	return best
}

// Reset releases every key and forgets the last key.
func (l *Latch) Reset() {
	*l = Latch{mode: l.mode}
}
