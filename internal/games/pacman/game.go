// Package pacman implements the maze game: a circle steered through a tile
// maze collecting pellets, with a fixed-step simulation and a Surface-based
// renderer.
package pacman

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Register the games on package load.
func init() {
	registry.Register("pacman", func() registry.Game { return New() })
	registry.Register("maze", func() registry.Game { return NewMaze() })
}

// Game implements registry.Game for the maze.
type Game struct {
	id      string
	title   string
	scoring bool

	cfg     config.PacmanConfig
	source  string
	skipped []Skipped
	world   *World
}

// New creates the scored game.
func New() *Game {
	return &Game{id: "pacman", title: "Pac-Man", scoring: true}
}

// NewMaze creates the free-roam variant: pellets are decoration and no
// score is kept.
func NewMaze() *Game {
	return &Game{id: "maze", title: "Maze (free roam)", scoring: false}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset loads the configuration, applies the difficulty preset and builds a
// fresh world from the map.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, source, err := config.LoadPacman(rc.ConfigPath)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(rc.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyPacmanPreset(&cfg, preset)
	if rc.TickRate > 0 {
		cfg.Physics.TickRate = rc.TickRate
	}

	g.source = source
	return g.ResetWith(cfg)
}

// ResetWith builds a fresh world from an already loaded configuration.
func (g *Game) ResetWith(cfg config.PacmanConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := OptionsFromConfig(cfg, g.scoring)
	if err != nil {
		return err
	}
	lvl, err := Load(ParseRows(cfg.Map), cfg.Board.TileSize, cfg.Board.TopbarOffset)
	if err != nil {
		return fmt.Errorf("pacman: failed to load map: %w", err)
	}

	g.cfg = cfg
	g.skipped = lvl.Skipped
	g.world = NewWorld(lvl, opts)
	return nil
}

// HandleKey forwards a key event to the input latch.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if g.world != nil {
		g.world.HandleKey(ev)
	}
}

// Step runs one frame. Before a successful Reset it does nothing.
func (g *Game) Step(dst core.Surface) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	n := g.world.Frame(dst)
	return core.StepResult{State: g.State(), Collected: n}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:       g.world.Score(),
		Ticks:       g.world.Ticks(),
		PelletsLeft: g.world.Pellets().Len(),
	}
}

// Display returns the presentation parameters of the loaded config.
func (g *Game) Display() core.Display {
	return core.Display{
		Width:       g.cfg.Board.Width,
		Height:      g.cfg.Board.Height,
		CellWidth:   g.cfg.Terminal.CellWidth,
		CellHeight:  g.cfg.Terminal.CellHeight,
		TickRate:    g.cfg.Physics.TickRate,
		RefreshRate: g.cfg.Terminal.RefreshRate,
		HoldWindow:  time.Duration(g.cfg.Terminal.HoldWindowMS) * time.Millisecond,
	}
}

// Config returns the configuration of the last successful reset.
func (g *Game) Config() config.PacmanConfig { return g.cfg }

// Source returns where the configuration was loaded from.
func (g *Game) Source() string { return g.source }

// Skipped returns the unknown map tokens of the last successful reset.
func (g *Game) Skipped() []Skipped { return g.skipped }

// World returns the running world, or nil before Reset.
func (g *Game) World() *World { return g.world }
