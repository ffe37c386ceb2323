package component

import "github.com/lixenwraith/starlight-reaver/core"

// ExplosionComponent is a purely visual burst, no collision
type ExplosionComponent struct {
	Bounds   core.Rect
	Life     float64 // Remaining seconds
	Duration float64 // Initial life
}

// Progress returns 0 at spawn rising to 1 at expiry
func (e *ExplosionComponent) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := 1 - e.Life/e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
