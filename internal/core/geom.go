// Package core provides fundamental types and utilities shared by the
// simulation and its presenters. It has no external dependencies so the
// game logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D point or vector in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// RectF is an axis-aligned rectangle in field units, anchored at its top-left corner.
type RectF struct {
	X, Y float64
	W, H float64
}

// CenteredRect builds a rectangle of the given size around a center point.
func CenteredRect(center, size Vec2) RectF {
	return RectF{
		X: center.X - size.X/2,
		Y: center.Y - size.Y/2,
		W: size.X,
		H: size.Y,
	}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CircleIntersectsRect reports whether a circle overlaps a rectangle.
// Touching edges count as overlap.
func CircleIntersectsRect(center Vec2, radius float64, r RectF) bool {
	nearestX := ClampF(center.X, r.X, r.Right())
	nearestY := ClampF(center.Y, r.Y, r.Bottom())
	dx := center.X - nearestX
	dy := center.Y - nearestY
	return dx*dx+dy*dy <= radius*radius
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
