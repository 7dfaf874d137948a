// Package window hosts a maze game in a desktop window using Ebitengine.
// Ebitengine calls Update once per refresh; the loop driver turns those calls
// into fixed-rate simulation ticks.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/loop"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   float64     // Window pixels per canvas pixel; zero means 1
	Logger  *log.Logger // Nil discards log output
}

// Game implements ebiten.Game around a registry game.
type Game struct {
	game    registry.Game
	display core.Display
	canvas  *ebiten.Image
	surface *ImageSurface
	clock   *loop.SystemClock
	frames  *loop.FrameQueue
	driver  *loop.Driver
	logger  *log.Logger
	scale   float64
	keys    []ebiten.Key // Scratch buffer for key polling
	held    *keyCounter
	state   core.GameState
}

// New resets the game and prepares an offscreen canvas of its size.
func New(game registry.Game, opts Options) (*Game, error) {
	if err := game.Reset(opts.Runtime); err != nil {
		return nil, err
	}
	d := game.Display()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	canvas := ebiten.NewImage(int(d.Width), int(d.Height))
	g := &Game{
		game:    game,
		display: d,
		canvas:  canvas,
		surface: NewImageSurface(canvas),
		clock:   loop.NewSystemClock(),
		frames:  &loop.FrameQueue{},
		logger:  logger,
		scale:   scale,
		held:    newKeyCounter(),
	}
	g.driver = loop.NewDriver(d.TickRate, g.tick)
	g.driver.Start(g.clock, g.frames)
	return g, nil
}

func (g *Game) tick() {
	g.state = g.game.Step(g.surface).State
}

// Update forwards key transitions to the game and fires the pending frame.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyQ || k == ebiten.KeyEscape {
			g.driver.Stop()
			g.logger.Info("window closed", "game", g.game.ID(), "score", g.state.Score, "ticks", g.state.Ticks)
			return ebiten.Termination
		}
		if ev, ok := g.held.press(k); ok {
			g.game.HandleKey(ev)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ev, ok := g.held.release(k); ok {
			g.game.HandleKey(ev)
		}
	}

	g.frames.Fire(g.clock.Now())
	return nil
}

// Draw copies the canvas of the last tick to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.canvas, op)
}

// Layout keeps the window at the scaled canvas size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

// ScreenWidth returns the window width in pixels.
func (g *Game) ScreenWidth() int {
	return int(g.display.Width * g.scale)
}

// ScreenHeight returns the window height in pixels.
func (g *Game) ScreenHeight() int {
	return int(g.display.Height * g.scale)
}

// State returns the game state after the last tick.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens the window and blocks until it is closed. Update is called at the
// display refresh rate and the driver throttles it to the tick rate.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	g, err := New(game, opts)
	if err != nil {
		return core.GameState{}, err
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(g.display.RefreshRate)

	if err := ebiten.RunGame(g); err != nil {
		return g.State(), err
	}
	return g.State(), nil
}
