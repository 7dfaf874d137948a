// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D vector in canvas pixels.
type Vec struct {
	X, Y float64
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CircleIntersectsRect reports whether the circle, moved by the candidate
// velocity v and grown by margin on every side, touches or overlaps r.
//
// The test is predictive: callers evaluate it before committing v so that a
// blocked move can be refused instead of resolved after penetration. Edges
// that merely touch count as a collision.
func CircleIntersectsRect(c Circle, v Vec, r Rect, margin float64) bool {
	return c.Y-c.R+v.Y-margin <= r.Bottom() &&
		c.X+c.R+v.X+margin >= r.X &&
		c.Y+c.R+v.Y+margin >= r.Y &&
		c.X-c.R+v.X-margin <= r.Right()
}

// CirclesIntersect reports whether the distance between the centers is
// strictly less than the sum of the radii.
func CirclesIntersect(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.R+b.R
}
