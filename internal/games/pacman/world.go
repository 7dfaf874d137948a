package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Options are the resolved parameters of a world.
type Options struct {
	Width, Height float64 // Canvas size
	Margin        float64 // Collision margin
	PlayerRadius  float64
	PlayerSpeed   float64
	PelletRadius  float64
	PelletPoints  int
	Scoring       bool // Pellets are collected and the score is drawn
	Intent        IntentMode
	Font          core.Font
	ScoreY        float64
}

// OptionsFromConfig resolves world options from a validated config.
func OptionsFromConfig(cfg config.PacmanConfig, scoring bool) (Options, error) {
	mode, err := ParseIntentMode(cfg.Movement.Intent)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		Margin:       cfg.Physics.CollisionMargin,
		PlayerRadius: cfg.Player.Radius,
		PlayerSpeed:  cfg.Player.Speed,
		PelletRadius: cfg.Pellets.Radius,
		PelletPoints: cfg.Pellets.Points,
		Scoring:      scoring,
		Intent:       mode,
		Font:         core.Font{Size: cfg.HUD.FontSize, Family: cfg.HUD.FontFamily},
		ScoreY:       cfg.HUD.ScoreY,
	}, nil
}

// World owns every entity of a running game. It is driven by one goroutine:
// key events and frames must not be delivered concurrently.
type World struct {
	opts    Options
	walls   []Wall
	pellets *PelletSet
	player  *Player
	latch   *Latch

	score int
	ticks uint64

	collected []PelletID // Scratch buffer reused across frames
}

// NewWorld populates a world from a loaded level.
func NewWorld(lvl Level, opts Options) *World {
	w := &World{
		opts:    opts,
		walls:   lvl.Walls,
		pellets: NewPelletSet(len(lvl.Pellets)),
		player:  NewPlayer(lvl.Start.X, lvl.Start.Y, opts.PlayerRadius, opts.PlayerSpeed, opts.Margin),
		latch:   NewLatch(opts.Intent),
	}
	for _, c := range lvl.Pellets {
		w.pellets.Add(Pellet{X: c.X, Y: c.Y, R: opts.PelletRadius})
	}
	return w
}

// HandleKey records a key event for the next frame.
func (w *World) HandleKey(ev core.KeyEvent) {
	w.latch.Handle(ev)
}

// Frame runs one tick and draws it onto dst:
//
//  1. clear the canvas
//  2. draw every wall
//  3. for each pellet: draw it, then test it against the player
//  4. draw the player, then move it
//  5. remove the pellets collected in step 3 and add their points
//  6. draw the score
//
// Each entity is drawn before it is updated, so what is shown lags the
// simulation by one tick. It returns the number of pellets removed.
func (w *World) Frame(dst core.Surface) int {
	dst.ClearRect(0, 0, w.opts.Width, w.opts.Height)

	for i := range w.walls {
		w.walls[i].Draw(dst)
	}

	w.collected = w.collected[:0]
	for _, id := range w.pellets.Active() {
		p := w.pellets.Get(id)
		p.Draw(dst)
		if w.opts.Scoring && p.Update(w.player) {
			w.collected = append(w.collected, id)
		}
	}

	w.player.Draw(dst)
	intent := w.latch.Intent()
	if intent == core.DirNone && w.latch.Mode() == IntentHeld {
		w.player.Stop()
	}
	w.player.Update(intent, w.walls)

	removed := 0
	for _, id := range w.collected {
		if w.pellets.Remove(id) {
			removed++
		}
	}
	w.score += removed * w.opts.PelletPoints

	if w.opts.Scoring {
		dst.DrawText(fmt.Sprintf("Score: %d", w.score), w.opts.Width/2, w.opts.ScoreY,
			w.opts.Font, core.AlignCenter, core.ColorWhite)
	}

	w.ticks++
	return removed
}

// Score returns the accumulated score.
func (w *World) Score() int { return w.score }

// Ticks returns the number of frames run.
func (w *World) Ticks() uint64 { return w.ticks }

// Player returns the player entity.
func (w *World) Player() *Player { return w.player }

// Walls returns the wall tiles. The slice must not be modified.
func (w *World) Walls() []Wall { return w.walls }

// Pellets returns the live pellet set.
func (w *World) Pellets() *PelletSet { return w.pellets }

// Latch returns the input latch.
func (w *World) Latch() *Latch { return w.latch }

// Options returns the options the world was built with.
func (w *World) Options() Options { return w.opts }
