package vmath

import "github.com/lixenwraith/starlight-reaver/core"

// Overlaps reports whether two boxes intersect
// Touching edges do not count as overlap
func Overlaps(a, b core.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Expand grows a box by margin on every side
func Expand(r core.Rect, margin float64) core.Rect {
	return core.Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// ClampInside moves r so it lies fully within a width x height field anchored at the origin
func ClampInside(r core.Rect, width, height float64) core.Rect {
	r.X = Clamp(r.X, 0, width-r.Width)
	r.Y = Clamp(r.Y, 0, height-r.Height)
	return r
}
