package system

import (
	"fmt"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// powerUpEffect applies one pickup to the world and returns the notification text
// An empty message means the pickup had no effect
type powerUpEffect func(w *engine.World) string

var powerUpEffects = [core.PowerUpTypeCount]powerUpEffect{
	core.PowerUpHealth:    applyHealth,
	core.PowerUpDamage:    applyDamage,
	core.PowerUpSpeed:     applySpeed,
	core.PowerUpRapidFire: applyRapidFire,
	core.PowerUpMultiShot: applyMultiShot,
}

// ApplyPowerUp runs the effect for t, enqueuing its notification
// Returns false when nothing changed, including unknown types
func ApplyPowerUp(w *engine.World, t core.PowerUpType) bool {
	if t >= core.PowerUpTypeCount {
		return false
	}
	msg := powerUpEffects[t](w)
	if msg == "" {
		return false
	}
	w.Notify(msg)
	return true
}

func applyHealth(w *engine.World) string {
	p := &w.Player
	if p.Lives >= w.Resource.Config.Player.MaxLives {
		return ""
	}
	p.Lives++
	return "Health Increased!"
}

func applyDamage(w *engine.World) string {
	w.Player.DamageMultiplier += w.Resource.Config.PowerUp.DamageIncrement
	return "Damage Increased!"
}

func applySpeed(w *engine.World) string {
	cfg := w.Resource.Config.PowerUp
	p := &w.Player
	if p.SpeedMultiplier >= cfg.MaxSpeedMultiplier {
		return ""
	}
	p.SpeedMultiplier = min(p.SpeedMultiplier+cfg.SpeedIncrement, cfg.MaxSpeedMultiplier)
	return fmt.Sprintf("Speed Boost! Now x%.1f", p.SpeedMultiplier)
}

func applyRapidFire(w *engine.World) string {
	cfg := w.Resource.Config
	p := &w.Player
	p.Buff(component.BuffRapidFire).Activate(cfg.PowerUp.RapidFireDuration)
	p.ShootCooldown = cfg.Player.ShootCooldown * cfg.Player.RapidFireFactor
	return fmt.Sprintf("Rapid Fire Activated For %g seconds!", cfg.PowerUp.RapidFireDuration)
}

func applyMultiShot(w *engine.World) string {
	d := w.Resource.Config.PowerUp.MultiShotDuration
	w.Player.Buff(component.BuffMultiShot).Activate(d)
	return fmt.Sprintf("Multi-Shot Activated For %g seconds!", d)
}

// BuffSystem counts down timed buffs and reverts their side effects on expiry
type BuffSystem struct {
	world *engine.World
}

func NewBuffSystem(world *engine.World) engine.System {
	s := &BuffSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *BuffSystem) Init() {}

func (s *BuffSystem) Name() string {
	return "buff"
}

func (s *BuffSystem) Priority() int {
	return parameter.PriorityBuff
}

func (s *BuffSystem) Update() {
	dt := s.world.Resource.Time.DeltaTime
	p := &s.world.Player

	for b := range p.Buffs {
		if !p.Buffs[b].Tick(dt) {
			continue
		}
		if component.BuffType(b) == component.BuffRapidFire {
			p.ShootCooldown = s.world.Resource.Config.Player.ShootCooldown
		}
	}
}
