package system

import (
	"sync/atomic"

	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/status"
)

// StatusSystem publishes gameplay gauges and counts outcome events
// Counters are process-lifetime, gauges reflect the last Playing tick
type StatusSystem struct {
	world *engine.World

	statTicks     *atomic.Int64
	statScore     *atomic.Int64
	statLevel     *atomic.Int64
	statLives     *atomic.Int64
	statEntities  *atomic.Int64
	statLivesLost *atomic.Int64
	statApplied   *atomic.Int64
	statSimTime   *status.Float
	statPeak      *status.Float
	statLastCause *status.Text
}

func NewStatusSystem(world *engine.World) *StatusSystem {
	reg := world.Resource.Status
	s := &StatusSystem{
		world: world,
	}

	s.statTicks = reg.Ints.Get("engine.ticks")
	s.statScore = reg.Ints.Get("game.score")
	s.statLevel = reg.Ints.Get("game.level")
	s.statLives = reg.Ints.Get("player.lives")
	s.statEntities = reg.Ints.Get("entity.count")
	s.statLivesLost = reg.Ints.Get("player.lives_lost")
	s.statApplied = reg.Ints.Get("powerup.applied")
	s.statSimTime = reg.Floats.Get("engine.sim_time")
	s.statPeak = reg.Floats.Get("entity.peak")
	s.statLastCause = reg.Strings.Get("player.last_hit")

	s.Init()
	return s
}

func (s *StatusSystem) Init() {
	s.statTicks.Store(0)
	s.statLivesLost.Store(0)
	s.statApplied.Store(0)
	s.statPeak.Set(0)
	s.statLastCause.Store("")
}

func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Update() {
	w := s.world
	s.statTicks.Add(1)
	s.statScore.Store(int64(w.Resource.Game.Score))
	s.statLevel.Store(int64(w.Resource.Game.Level))
	s.statLives.Store(int64(w.Player.Lives))
	n := w.EntityCount()
	s.statEntities.Store(int64(n))
	s.statPeak.Max(float64(n))
	s.statSimTime.Set(w.Resource.Time.SimTime)
}

func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerDamaged,
		event.EventPowerUpCollected,
	}
}

func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerDamaged:
		if payload, ok := ev.Payload.(*event.PlayerDamagedPayload); ok {
			s.statLivesLost.Add(1)
			s.statLastCause.Store(payload.Cause.String())
		}

	case event.EventPowerUpCollected:
		if payload, ok := ev.Payload.(*event.PowerUpCollectedPayload); ok && payload.Applied {
			s.statApplied.Add(1)
		}
	}
}
