// Package core provides fundamental types and utilities shared by the game
// engine and the terminal host. It has no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Point is a position in scene coordinates.
// Scene space is y-up with the origin at the bottom-left corner.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned box in scene coordinates.
type Rect struct {
	X, Y float64 // Bottom-left corner
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

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Contains reports whether p lies inside r.
// The left and bottom edges are inclusive, the right and top edges exclusive.
func (r Rect) Contains(p Point) bool {
	return r.ContainsX(p.X) && r.ContainsY(p.Y)
}

// ContainsX reports whether x lies in the half-open span [X, Right).
func (r Rect) ContainsX(x float64) bool {
	return x >= r.X && x < r.Right()
}

// ContainsY reports whether y lies in the half-open band [Y, Top).
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Y && y < r.Top()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
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

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
