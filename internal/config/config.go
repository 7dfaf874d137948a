// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze games.
package config

import (
	"errors"
	"fmt"
)

// PacmanConfig contains all configuration for the maze game.
type PacmanConfig struct {
	Board    PacmanBoard    `yaml:"board"`
	Physics  PacmanPhysics  `yaml:"physics"`
	Player   PacmanPlayer   `yaml:"player"`
	Pellets  PacmanPellets  `yaml:"pellets"`
	Movement PacmanMovement `yaml:"movement"`
	HUD      PacmanHUD      `yaml:"hud"`
	Terminal PacmanTerminal `yaml:"terminal"`
	Map      []string       `yaml:"map"` // One string per row, one token per character
}

// PacmanBoard defines the canvas and tile grid geometry, in canvas pixels.
type PacmanBoard struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	TileSize     float64 `yaml:"tile_size"`
	TopbarOffset float64 `yaml:"topbar_offset"` // Space reserved above the maze for the score
}

// PacmanPhysics defines simulation parameters.
type PacmanPhysics struct {
	TickRate        int     `yaml:"tick_rate"`
	CollisionMargin float64 `yaml:"collision_margin"`
}

// PacmanPlayer defines the player circle.
type PacmanPlayer struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Pixels per tick
}

// PacmanPellets defines pellet size and value.
type PacmanPellets struct {
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
}

// PacmanMovement selects how held keys become a movement intent.
type PacmanMovement struct {
	Intent string `yaml:"intent"` // "held" or "latched"
}

// PacmanHUD defines the score line.
type PacmanHUD struct {
	FontSize   float64 `yaml:"font_size"`
	FontFamily string  `yaml:"font_family"`
	ScoreY     float64 `yaml:"score_y"` // Baseline of the centered score text
}

// PacmanTerminal defines how the canvas maps onto terminal cells.
type PacmanTerminal struct {
	CellWidth    float64 `yaml:"cell_width"`  // Canvas pixels per column
	CellHeight   float64 `yaml:"cell_height"` // Canvas pixels per row
	RefreshRate  int     `yaml:"refresh_rate"`
	HoldWindowMS int     `yaml:"hold_window_ms"` // Terminals send no key-up; a key counts as held this long after its last repeat
}

// Intent modes.
const (
	IntentHeld    = "held"
	IntentLatched = "latched"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration can drive a game.
func (c PacmanConfig) Validate() error {
	switch {
	case c.Board.TileSize <= 0:
		return fmt.Errorf("%w: board.tile_size must be positive, got %v", ErrInvalidConfig, c.Board.TileSize)
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board size must be positive, got %vx%v", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Board.TopbarOffset < 0:
		return fmt.Errorf("%w: board.topbar_offset must not be negative", ErrInvalidConfig)
	case c.Physics.TickRate <= 0:
		return fmt.Errorf("%w: physics.tick_rate must be positive, got %d", ErrInvalidConfig, c.Physics.TickRate)
	case c.Physics.CollisionMargin < 0:
		return fmt.Errorf("%w: physics.collision_margin must not be negative", ErrInvalidConfig)
	case c.Player.Radius < 0 || c.Pellets.Radius < 0:
		return fmt.Errorf("%w: radii must not be negative", ErrInvalidConfig)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player.speed must not be negative", ErrInvalidConfig)
	case c.Player.Speed >= c.Board.TileSize:
		return fmt.Errorf("%w: player.speed %v must be below the tile size %v", ErrInvalidConfig, c.Player.Speed, c.Board.TileSize)
	case c.Pellets.Points < 0:
		return fmt.Errorf("%w: pellets.points must not be negative", ErrInvalidConfig)
	case c.Movement.Intent != IntentHeld && c.Movement.Intent != IntentLatched:
		return fmt.Errorf("%w: movement.intent must be %q or %q, got %q", ErrInvalidConfig, IntentHeld, IntentLatched, c.Movement.Intent)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalidConfig)
	case c.Terminal.RefreshRate <= 0:
		return fmt.Errorf("%w: terminal.refresh_rate must be positive, got %d", ErrInvalidConfig, c.Terminal.RefreshRate)
	case c.Terminal.HoldWindowMS < c.minHoldWindowMS():
		return fmt.Errorf("%w: terminal.hold_window_ms must be at least %d (one tick plus one refresh), got %d",
			ErrInvalidConfig, c.minHoldWindowMS(), c.Terminal.HoldWindowMS)
	case len(c.Map) == 0:
		return fmt.Errorf("%w: map is empty", ErrInvalidConfig)
	}
	return nil
}

// minHoldWindowMS is the shortest hold window that keeps a single key press
// alive until the next tick. A press can land just after a tick, and the next
// one fires on the first refresh more than a tick interval later.
func (c PacmanConfig) minHoldWindowMS() int {
	perTick := (1000 + c.Physics.TickRate - 1) / c.Physics.TickRate
	perFrame := (1000 + c.Terminal.RefreshRate - 1) / c.Terminal.RefreshRate
	return perTick + perFrame
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means "keep the config".
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// SpeedForPreset returns the player speed for a preset. The speeds divide
// the default tile size evenly except normal, which keeps the classic 3.
func SpeedForPreset(preset DifficultyPreset, base float64) float64 {
	switch preset {
	case DifficultyEasy:
		return 2
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 4
	default:
		return base
	}
}
