package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// HoldTracker turns terminal key repeats into press and release events.
// Terminals report only key-down, repeated while a key is held, so a key is
// treated as released once no repeat has arrived for the hold window.
type HoldTracker struct {
	window time.Duration
	seen   map[core.Key]time.Duration // Time of the last press or repeat
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		seen:   make(map[core.Key]time.Duration),
	}
}

// Press records a press or repeat of k at now and returns the key-down event
// to forward. Repeats are forwarded too, like browser auto-repeat.
func (h *HoldTracker) Press(k core.Key, now time.Duration) core.KeyEvent {
	h.seen[k] = now
	return core.Press(k)
}

// Held reports whether k is currently considered down.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.seen[k]
	return ok
}

// Expire releases every key whose last repeat is at least a window old.
// Events are returned in key order so replays stay deterministic.
func (h *HoldTracker) Expire(now time.Duration) []core.KeyEvent {
	var expired []core.Key
	for k, at := range h.seen {
		if now-at >= h.window {
			expired = append(expired, k)
		}
	}
	return h.release(expired)
}

// ReleaseAll releases every held key.
func (h *HoldTracker) ReleaseAll() []core.KeyEvent {
	keys := make([]core.Key, 0, len(h.seen))
	for k := range h.seen {
		keys = append(keys, k)
	}
	return h.release(keys)
}

func (h *HoldTracker) release(keys []core.Key) []core.KeyEvent {
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	events := make([]core.KeyEvent, 0, len(keys))
	for _, k := range keys {
		delete(h.seen, k)
		events = append(events, core.Release(k))
	}
	return events
}
