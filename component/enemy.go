package component

import (
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// EnemyComponent is a descending hostile ship
type EnemyComponent struct {
	Bounds  core.Rect
	Variant int // Visual variant picked at spawn

	// Drop is the enemy's own source for pickup-drop decisions
	Drop vmath.Random

	// ShootCooldown is the time remaining before this enemy may fire again
	ShootCooldown float64
}

// CanShoot reports whether the refire delay has elapsed
func (e *EnemyComponent) CanShoot() bool {
	return e.ShootCooldown <= 0
}
