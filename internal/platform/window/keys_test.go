package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		in  ebiten.Key
		out core.Key
		ok  bool
	}{
		{ebiten.KeyArrowUp, core.KeyArrowUp, true},
		{ebiten.KeyW, core.KeyArrowUp, true},
		{ebiten.KeyA, core.KeyArrowLeft, true},
		{ebiten.KeyArrowDown, core.KeyArrowDown, true},
		{ebiten.KeyD, core.KeyArrowRight, true},
		{ebiten.KeySpace, "", false},
	}

	for _, tc := range tests {
		out, ok := mapKey(tc.in)
		if out != tc.out || ok != tc.ok {
			t.Errorf("mapKey(%v) = (%q, %v), expected (%q, %v)", tc.in, out, ok, tc.out, tc.ok)
		}
	}
}

func TestKeyCounterSharedDirection(t *testing.T) {
	c := newKeyCounter()

	if ev, ok := c.press(ebiten.KeyArrowUp); !ok || ev != core.Press(core.KeyArrowUp) {
		t.Fatalf("press(ArrowUp) = (%+v, %v), expected key-down", ev, ok)
	}
	if ev, ok := c.press(ebiten.KeyW); !ok || ev != core.Press(core.KeyArrowUp) {
		t.Fatalf("press(W) = (%+v, %v), expected key-down", ev, ok)
	}

	// ArrowUp is still down, so letting go of W must not release Up.
	if ev, ok := c.release(ebiten.KeyW); ok {
		t.Errorf("release(W) = %+v, expected nothing while ArrowUp is held", ev)
	}
	if ev, ok := c.release(ebiten.KeyArrowUp); !ok || ev != core.Release(core.KeyArrowUp) {
		t.Errorf("release(ArrowUp) = (%+v, %v), expected key-up", ev, ok)
	}
}

func TestKeyCounterSingleKey(t *testing.T) {
	c := newKeyCounter()

	c.press(ebiten.KeyD)
	if ev, ok := c.release(ebiten.KeyD); !ok || ev != core.Release(core.KeyArrowRight) {
		t.Errorf("release(D) = (%+v, %v), expected key-up for ArrowRight", ev, ok)
	}
	// A release without a recorded press still reaches the game.
	if ev, ok := c.release(ebiten.KeyA); !ok || ev != core.Release(core.KeyArrowLeft) {
		t.Errorf("release(A) = (%+v, %v), expected key-up for ArrowLeft", ev, ok)
	}
	if _, ok := c.press(ebiten.KeySpace); ok {
		t.Error("press(Space) should be ignored")
	}
}

func TestKeyCounterHeldModeKeepsSteering(t *testing.T) {
	c := newKeyCounter()
	latch := pacman.NewLatch(pacman.IntentHeld)
	send := func(ev core.KeyEvent, ok bool) {
		if ok {
			latch.Handle(ev)
		}
	}

	send(c.press(ebiten.KeyArrowUp))
	send(c.press(ebiten.KeyW))
	send(c.release(ebiten.KeyW))

	if got := latch.Intent(); got != core.DirUp {
		t.Errorf("Intent() = %v after tapping W over a held ArrowUp, expected up", got)
	}

	send(c.release(ebiten.KeyArrowUp))
	if got := latch.Intent(); got != core.DirNone {
		t.Errorf("Intent() = %v after releasing both keys, expected none", got)
	}
}
