package core

// Vec2 is a 2D vector in playfield pixels (or pixels per second for velocities)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt builds a box of the given size at pos
func RectAt(pos Vec2, width, height float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: width, Height: height}
}

// Pos returns the top-left corner
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
