package system

import (
	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// ExplosionSystem ages visual bursts and drops expired ones
type ExplosionSystem struct {
	world *engine.World
}

func NewExplosionSystem(world *engine.World) engine.System {
	return &ExplosionSystem{world: world}
}

func (s *ExplosionSystem) Init() {}

func (s *ExplosionSystem) Name() string {
	return "explosion"
}

func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

func (s *ExplosionSystem) Update() {
	dt := s.world.Resource.Time.DeltaTime
	s.world.Explosions.RemoveIf(func(_ core.Entity, e *component.ExplosionComponent) bool {
		e.Life -= dt
		return e.Life <= 0
	})
}
