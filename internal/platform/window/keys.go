package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// mapKey maps arrow keys and WASD to game keys.
func mapKey(k ebiten.Key) (core.Key, bool) {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return core.KeyArrowUp, true
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return core.KeyArrowDown, true
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.KeyArrowLeft, true
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.KeyArrowRight, true
	}
	return "", false
}

// keyCounter tracks how many physical keys hold each game key down. Two
// physical keys share one game key, so a game key is released only when the
// last of them goes up.
type keyCounter struct {
	down map[core.Key]int
}

func newKeyCounter() *keyCounter {
	return &keyCounter{down: make(map[core.Key]int)}
}

// press returns the key-down event for k, if k steers.
func (c *keyCounter) press(k ebiten.Key) (core.KeyEvent, bool) {
	ck, ok := mapKey(k)
	if !ok {
		return core.KeyEvent{}, false
	}
	c.down[ck]++
	return core.Press(ck), true
}

// release returns the key-up event for k once no other physical key holds
// the same game key.
func (c *keyCounter) release(k ebiten.Key) (core.KeyEvent, bool) {
	ck, ok := mapKey(k)
	if !ok {
		return core.KeyEvent{}, false
	}
	if c.down[ck] > 1 {
		c.down[ck]--
		return core.KeyEvent{}, false
	}
	delete(c.down, ck)
	return core.Release(ck), true
}
