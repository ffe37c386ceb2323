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

// CombatSystem resolves all overlaps once per tick, after movement and spawning
//
// Order:
//  1. player-faction projectiles vs enemies (player, multi-shot, rapid-fire)
//  2. enemy projectiles vs player
//  3. enemy bodies vs player
//  4. power-ups vs the enlarged player box
type CombatSystem struct {
	world *engine.World

	statKilled    *atomic.Int64
	statDropped   *atomic.Int64
	statCollected *atomic.Int64
}

func NewCombatSystem(world *engine.World) engine.System {
	s := &CombatSystem{
		world: world,
	}

	s.statKilled = world.Resource.Status.Ints.Get("enemy.killed")
	s.statDropped = world.Resource.Status.Ints.Get("powerup.dropped")
	s.statCollected = world.Resource.Status.Ints.Get("powerup.collected")

	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.statKilled.Store(0)
	s.statDropped.Store(0)
	s.statCollected.Store(0)
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) Update() {
	s.resolveKills()
	s.resolveEnemyFire()
	s.resolveRamming()
	s.resolvePickups()
}

// resolveKills lets each projectile destroy at most one enemy
func (s *CombatSystem) resolveKills() {
	w := s.world
	for _, f := range core.PlayerFactions {
		shots := w.Projectiles[f]
		for i := shots.Len() - 1; i >= 0; i-- {
			_, shot := shots.At(i)
			box := shot.Bounds

			for j := w.Enemies.Len() - 1; j >= 0; j-- {
				_, e := w.Enemies.At(j)
				if !vmath.Overlaps(box, e.Bounds) {
					continue
				}
				enemy := *e
				shots.RemoveAt(i)
				w.Enemies.RemoveAt(j)
				s.kill(enemy, f)
				break
			}
		}
	}
}

func (s *CombatSystem) kill(enemy component.EnemyComponent, f core.Faction) {
	w := s.world
	cfg := w.Resource.Config

	w.SpawnExplosion(enemy.Bounds)
	w.Resource.Game.Score += cfg.Scoring.PointsPerKill
	s.statKilled.Add(1)

	rng := enemy.Drop
	if rng == nil {
		rng = w.Resource.Random.Source
	}
	dropped := rng.Intn(100) < cfg.PowerUp.DropChance
	if dropped {
		t := core.PowerUpType(rng.Intn(int(core.PowerUpTypeCount)))
		w.PowerUps.Add(w.CreateEntity(), component.PowerUpComponent{
			Type:   t,
			Bounds: core.Rect{X: enemy.Bounds.X, Y: enemy.Bounds.Y, Width: parameter.PowerUpWidth, Height: parameter.PowerUpHeight},
		})
		s.statDropped.Add(1)
	}

	w.PushEvent(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{
		Faction: f,
		Pos:     enemy.Bounds.Pos(),
		Dropped: dropped,
	})
	syncLevel(w)
}

func (s *CombatSystem) resolveEnemyFire() {
	w := s.world
	shots := w.Projectiles[core.FactionEnemy]
	for i := shots.Len() - 1; i >= 0; i-- {
		_, shot := shots.At(i)
		if !vmath.Overlaps(shot.Bounds, w.Player.Bounds) {
			continue
		}
		shots.RemoveAt(i)
		w.DamagePlayer(event.CauseEnemyProjectile)
		w.SpawnExplosion(w.Player.Bounds)
	}
}

func (s *CombatSystem) resolveRamming() {
	w := s.world
	for i := w.Enemies.Len() - 1; i >= 0; i-- {
		_, e := w.Enemies.At(i)
		if !vmath.Overlaps(e.Bounds, w.Player.Bounds) {
			continue
		}
		w.Enemies.RemoveAt(i)
		w.DamagePlayer(event.CauseEnemyCollision)
		w.SpawnExplosion(w.Player.Bounds)
	}
}

// resolvePickups consumes every touched power-up, effective or not
func (s *CombatSystem) resolvePickups() {
	w := s.world
	reach := vmath.Expand(w.Player.Bounds, w.Resource.Config.PowerUp.PickupMargin)
	for i := w.PowerUps.Len() - 1; i >= 0; i-- {
		_, p := w.PowerUps.At(i)
		if !vmath.Overlaps(p.Bounds, reach) {
			continue
		}
		t := p.Type
		w.PowerUps.RemoveAt(i)

		applied := ApplyPowerUp(w, t)
		s.statCollected.Add(1)
		w.PushEvent(event.EventPowerUpCollected, &event.PowerUpCollectedPayload{Type: t, Applied: applied})
	}
}
