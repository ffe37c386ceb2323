package system

import (
	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// KineticSystem integrates velocities and prunes entities that left the playfield
// Removal predicates are evaluated after movement on the same tick
type KineticSystem struct {
	world *engine.World
}

func NewKineticSystem(world *engine.World) engine.System {
	s := &KineticSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *KineticSystem) Init() {}

func (s *KineticSystem) Name() string {
	return "kinetic"
}

func (s *KineticSystem) Priority() int {
	return parameter.PriorityKinetic
}

func (s *KineticSystem) Update() {
	w := s.world
	cfg := w.Resource.Config
	dt := w.Resource.Time.DeltaTime
	width, height := cfg.Playfield.Width, cfg.Playfield.Height

	for f := range w.Projectiles {
		faction := core.Faction(f)
		w.Projectiles[f].RemoveIf(func(_ core.Entity, p *component.ProjectileComponent) bool {
			p.Bounds.X += p.Vel.X * dt
			p.Bounds.Y += p.Vel.Y * dt
			if faction.Hostile() {
				return p.Bounds.Y > height
			}
			return p.Bounds.Y < 0 || p.Bounds.Y > height || p.Bounds.X < 0 || p.Bounds.X > width
		})
	}

	// Escaped enemies count as a hit, one life each
	escaped := w.Enemies.RemoveIf(func(_ core.Entity, e *component.EnemyComponent) bool {
		e.Bounds.Y += cfg.Enemy.Speed * dt
		if e.ShootCooldown > 0 {
			e.ShootCooldown -= dt
		}
		return e.Bounds.Y > height
	})
	for range escaped {
		w.DamagePlayer(event.CauseEnemyEscaped)
	}

	w.PowerUps.RemoveIf(func(_ core.Entity, p *component.PowerUpComponent) bool {
		p.Bounds.Y += cfg.PowerUp.FallSpeed * dt
		return p.Bounds.Y > height
	})
}
