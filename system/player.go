package system

import (
	"sync/atomic"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// PlayerSystem moves the player from held directions and fires while shoot is held
type PlayerSystem struct {
	world *engine.World

	statShots *atomic.Int64
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		world: world,
	}

	s.statShots = world.Resource.Status.Ints.Get("player.shots")

	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.statShots.Store(0)
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	cfg := s.world.Resource.Config
	dt := s.world.Resource.Time.DeltaTime
	in := s.world.Resource.Input.Frame
	p := &s.world.Player

	// Movement
	var dir core.Vec2
	if in.IsHeld(core.IntentMoveLeft) {
		dir.X--
	}
	if in.IsHeld(core.IntentMoveRight) {
		dir.X++
	}
	if in.IsHeld(core.IntentMoveUp) {
		dir.Y--
	}
	if in.IsHeld(core.IntentMoveDown) {
		dir.Y++
	}
	step := cfg.Player.BaseSpeed * p.SpeedMultiplier * dt
	p.Bounds.X += dir.X * step
	p.Bounds.Y += dir.Y * step
	p.Bounds = vmath.ClampInside(p.Bounds, cfg.Playfield.Width, cfg.Playfield.Height)

	// Firing
	p.ShootTimer = max(p.ShootTimer-dt, 0)
	if p.ShootTimer <= 0 && in.IsHeld(core.IntentShoot) {
		s.fire()
		p.ShootTimer = p.ShootCooldown
	}
}

// fire emits the shot pattern of the governing buff: multi-shot over rapid-fire over standard
func (s *PlayerSystem) fire() {
	cfg := s.world.Resource.Config
	p := &s.world.Player
	b := p.Bounds

	center := b.X + b.Width/2 - parameter.CenterMuzzleHalfSize
	speed := cfg.Projectile.PlayerSpeed
	spread := cfg.Projectile.MultiShotSpread

	switch {
	case p.Buffs[component.BuffMultiShot].Active:
		s.spawn(core.FactionMultiShot, b.X+parameter.MultiShotLeftOffset, b.Y, core.Vec2{X: -spread, Y: -speed})
		s.spawn(core.FactionMultiShot, center, b.Y, core.Vec2{Y: -speed})
		s.spawn(core.FactionMultiShot, b.Right()-parameter.MultiShotRightInset, b.Y, core.Vec2{X: spread, Y: -speed})
	case p.Buffs[component.BuffRapidFire].Active:
		s.spawn(core.FactionRapidFire, center, b.Y, core.Vec2{Y: -cfg.Projectile.RapidFireSpeed})
	default:
		s.spawn(core.FactionPlayer, center, b.Y, core.Vec2{Y: -speed})
	}

	s.statShots.Add(1)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundShoot})
}

func (s *PlayerSystem) spawn(f core.Faction, x, y float64, vel core.Vec2) {
	w := s.world
	w.Projectiles[f].Add(w.CreateEntity(), component.ProjectileComponent{
		Bounds:  core.Rect{X: x, Y: y, Width: parameter.ProjectileWidth, Height: parameter.ProjectileHeight},
		Vel:     vel,
		Faction: f,
	})
}
