// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Vec is a 2D vector in world units (pixels of the original 800x600 field).
// Y grows downward.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Projection maps world coordinates onto a grid of screen cells.
type Projection struct {
	WorldW, WorldH float64
	OffsetX        int // First screen column of the field
	OffsetY        int // First screen row of the field
	Cols, Rows     int // Size of the field on screen
}

// Point converts a world position to a screen cell.
func (p Projection) Point(v Vec) (int, int) {
	if p.WorldW <= 0 || p.WorldH <= 0 {
		return p.OffsetX, p.OffsetY
	}
	x := int(math.Floor(v.X * float64(p.Cols) / p.WorldW))
	y := int(math.Floor(v.Y * float64(p.Rows) / p.WorldH))
	return p.OffsetX + x, p.OffsetY + y
}

// Box converts a world-space box centered at c with size (w, h) to screen cells.
// The result always covers at least one cell.
func (p Projection) Box(c Vec, w, h float64) Rect {
	x0, y0 := p.Point(Vec{X: c.X - w/2, Y: c.Y - h/2})
	x1, y1 := p.Point(Vec{X: c.X + w/2, Y: c.Y + h/2})
	r := NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
	return r
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
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
