package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Wall is an immutable square tile of the maze.
type Wall struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Shape WallShape
	Image core.Sprite
}

// NewWall creates a size x size wall tile with the artwork for shape.
func NewWall(x, y, size float64, shape WallShape) Wall {
	return Wall{
		X:     x,
		Y:     y,
		W:     size,
		H:     size,
		Shape: shape,
		Image: core.Sprite{
			Name:  shape.String(),
			W:     size,
			H:     size,
			Edges: shape.Edges(),
			Color: core.ColorBlue,
		},
	}
}

// Rect returns the collision box of the wall.
func (w Wall) Rect() core.Rect {
	return core.NewRect(w.X, w.Y, w.W, w.H)
}

// Draw renders the wall artwork at its top-left corner.
func (w Wall) Draw(dst core.Surface) {
	dst.DrawImage(w.Image, w.X, w.Y)
}

// Player is the controllable circle.
type Player struct {
	X, Y     float64 // Center
	R        float64
	Velocity core.Vec

	speed  float64
	margin float64
}

// NewPlayer creates a player at rest centered on (x, y).
func NewPlayer(x, y, r, speed, margin float64) *Player {
	return &Player{X: x, Y: y, R: r, speed: speed, margin: margin}
}

// Speed returns the magnitude of the velocity the player moves with.
func (p *Player) Speed() float64 {
	return p.speed
}

// Circle returns the collision circle at the current position.
func (p *Player) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.R}
}

// WillCollide reports whether moving by v would touch any wall,
// including the collision margin.
func (p *Player) WillCollide(v core.Vec, walls []Wall) bool {
	c := p.Circle()
	for i := range walls {
		if core.CircleIntersectsRect(c, v, walls[i].Rect(), p.margin) {
			return true
		}
	}
	return false
}

// Stop zeroes the velocity.
func (p *Player) Stop() {
	p.Velocity = core.Vec{}
}

// Update applies one tick of movement.
//
// A directional intent is tested against the walls first. If the move is
// free, the velocity becomes that single axis at full speed. If blocked, only
// the velocity on the intended axis is cleared, so a player moving along a
// corridor keeps going until the turn opens up. DirNone leaves the velocity
// alone. Finally the resulting velocity is checked once more and zeroed if it
// would enter a wall, then applied.
func (p *Player) Update(intent core.Direction, walls []Wall) {
	switch dx, dy := intent.Delta(); {
	case dx != 0:
		p.steerX(dx*p.speed, walls)
	case dy != 0:
		p.steerY(dy*p.speed, walls)
	}

	if !p.Velocity.IsZero() && p.WillCollide(p.Velocity, walls) {
		p.Velocity = core.Vec{}
	}

	p.X += p.Velocity.X
	p.Y += p.Velocity.Y
}

func (p *Player) steerX(vx float64, walls []Wall) {
	if p.WillCollide(core.Vec{X: vx}, walls) {
		p.Velocity.X = 0
		return
	}
	p.Velocity = core.Vec{X: vx}
}

func (p *Player) steerY(vy float64, walls []Wall) {
	if p.WillCollide(core.Vec{Y: vy}, walls) {
		p.Velocity.Y = 0
		return
	}
	p.Velocity = core.Vec{Y: vy}
}

// Draw renders the player as a filled yellow circle.
func (p *Player) Draw(dst core.Surface) {
	dst.FillCircle(p.X, p.Y, p.R, core.ColorYellow)
}

// Pellet is a collectible dot.
type Pellet struct {
	X, Y      float64
	R         float64
	Collected bool
}

// Circle returns the collision circle of the pellet.
func (p *Pellet) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.R}
}

// Update marks the pellet collected when the player overlaps it.
// It returns true only on the tick the pellet becomes collected.
func (p *Pellet) Update(player *Player) bool {
	if p.Collected {
		return false
	}
	if core.CirclesIntersect(p.Circle(), player.Circle()) {
		p.Collected = true
		return true
	}
	return false
}

// Draw renders the pellet as a filled white circle.
func (p *Pellet) Draw(dst core.Surface) {
	dst.FillCircle(p.X, p.Y, p.R, core.ColorWhite)
}
