package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/loop"
)

type manualClock struct{ now time.Duration }

func (c *manualClock) Now() time.Duration { return c.now }

// tapLeft runs the session frame order (expire holds, then fire the driver)
// for a single ArrowLeft tap made right after the driver started, and
// returns how far the player moved.
func tapLeft(t *testing.T, window time.Duration) float64 {
	t.Helper()
	g := pacman.New()
	if err := g.ResetWith(config.DefaultPacmanConfig()); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}
	d := g.Display()
	surface := core.NewCellSurface(core.NewScreen(44, 28), d.CellWidth, d.CellHeight)

	clock := &manualClock{}
	frames := &loop.FrameQueue{}
	loop.NewDriver(d.TickRate, func() { g.Step(surface) }).Start(clock, frames)

	holds := NewHoldTracker(window)
	startX := g.World().Player().X
	g.HandleKey(holds.Press(core.KeyArrowLeft, 0))

	refresh := time.Second / time.Duration(d.RefreshRate)
	for i := 1; i <= 30; i++ {
		clock.now = time.Duration(i) * refresh
		for _, ev := range holds.Expire(clock.now) {
			g.HandleKey(ev)
		}
		frames.Fire(clock.now)
	}
	return startX - g.World().Player().X
}

func TestShortestValidHoldWindowSteers(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Terminal.HoldWindowMS = 26
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, expected 26 ms to be accepted", err)
	}

	if moved := tapLeft(t, 26*time.Millisecond); moved != cfg.Player.Speed {
		t.Errorf("tap moved the player %v px, expected one step of %v", moved, cfg.Player.Speed)
	}
}

func TestTooShortHoldWindowLosesTap(t *testing.T) {
	if moved := tapLeft(t, 0); moved != 0 {
		t.Errorf("tap with a zero window moved the player %v px, expected 0", moved)
	}
}
