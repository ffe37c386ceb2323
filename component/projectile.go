package component

import "github.com/lixenwraith/starlight-reaver/core"

// ProjectileComponent binds a projectile's box and velocity as one record
type ProjectileComponent struct {
	Bounds  core.Rect
	Vel     core.Vec2
	Faction core.Faction
}
