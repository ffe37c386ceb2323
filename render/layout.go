package render

import (
	"math"

	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// Terminal cells are roughly twice as tall as wide
const cellAspect = 2.0

// Minimum usable field in cells
const (
	minFieldCols = 20
	minFieldRows = 8
)

// Layout maps playfield pixels onto terminal cells
// Row 0 is the HUD, the last row is the status line, and the field sits
// inside a one-cell frame between them, centered and aspect-correct
type Layout struct {
	ScreenW, ScreenH int

	// Field origin and extent in cells, frame excluded
	FieldX, FieldY int
	Cols, Rows     int

	// Playfield pixels covered by one cell
	PixelsPerCol float64
	PixelsPerRow float64
}

// NewLayout fits a fieldW x fieldH playfield into a screenW x screenH terminal
func NewLayout(screenW, screenH int, fieldW, fieldH float64) Layout {
	l := Layout{ScreenW: screenW, ScreenH: screenH}

	availCols := screenW - 2
	availRows := screenH - 4 // HUD, status, two frame rows
	if availCols <= 0 || availRows <= 0 || fieldW <= 0 || fieldH <= 0 {
		return l
	}

	ppc := math.Max(fieldW/float64(availCols), fieldH/(float64(availRows)*cellAspect))
	l.PixelsPerCol = ppc
	l.PixelsPerRow = ppc * cellAspect
	l.Cols = min(availCols, int(math.Ceil(fieldW/l.PixelsPerCol)))
	l.Rows = min(availRows, int(math.Ceil(fieldH/l.PixelsPerRow)))
	l.FieldX = 1 + (availCols-l.Cols)/2
	l.FieldY = 2 + (availRows-l.Rows)/2
	return l
}

// Usable reports whether the terminal is large enough to draw the field
func (l Layout) Usable() bool {
	return l.Cols >= minFieldCols && l.Rows >= minFieldRows
}

// Cell maps a playfield point to a screen cell, clipped to the field
func (l Layout) Cell(p core.Vec2) (int, int) {
	cx := int(math.Floor(p.X / l.PixelsPerCol))
	cy := int(math.Floor(p.Y / l.PixelsPerRow))
	return l.FieldX + vmath.ClampInt(cx, 0, l.Cols-1), l.FieldY + vmath.ClampInt(cy, 0, l.Rows-1)
}

// Span maps a rect to the inclusive screen cell range it covers
// ok is false when the rect lies fully outside the field
func (l Layout) Span(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	cx0 := int(math.Floor(r.X / l.PixelsPerCol))
	cy0 := int(math.Floor(r.Y / l.PixelsPerRow))
	cx1 := int(math.Ceil(r.Right()/l.PixelsPerCol)) - 1
	cy1 := int(math.Ceil(r.Bottom()/l.PixelsPerRow)) - 1
	cx1 = max(cx1, cx0)
	cy1 = max(cy1, cy0)

	if cx1 < 0 || cy1 < 0 || cx0 >= l.Cols || cy0 >= l.Rows {
		return 0, 0, 0, 0, false
	}
	x0 = l.FieldX + max(cx0, 0)
	y0 = l.FieldY + max(cy0, 0)
	x1 = l.FieldX + min(cx1, l.Cols-1)
	y1 = l.FieldY + min(cy1, l.Rows-1)
	return x0, y0, x1, y1, true
}
