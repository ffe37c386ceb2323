package component

import "github.com/lixenwraith/starlight-reaver/core"

// PlayerComponent is the single player's mutable state
type PlayerComponent struct {
	Bounds core.Rect

	Lives int // Kept within [0, max lives]

	DamageMultiplier float64 // >= 1.0, grows without bound
	SpeedMultiplier  float64 // Capped at the configured maximum

	ShootCooldown float64 // Effective seconds between shots
	ShootTimer    float64 // Seconds until the next shot is allowed, never below 0

	Buffs [BuffTypeCount]BuffTimer
}

// Buff returns the timer for b
func (p *PlayerComponent) Buff(b BuffType) *BuffTimer {
	return &p.Buffs[b]
}
