package system

import (
	"sync/atomic"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// SpawnSystem emits enemies on the level-derived interval and rolls enemy fire
type SpawnSystem struct {
	world *engine.World

	statSpawned    *atomic.Int64
	statEnemyShots *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world: world,
	}

	s.statSpawned = world.Resource.Status.Ints.Get("enemy.spawned")
	s.statEnemyShots = world.Resource.Status.Ints.Get("enemy.shots")

	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.statSpawned.Store(0)
	s.statEnemyShots.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	cfg := s.world.Resource.Config
	dt := s.world.Resource.Time.DeltaTime
	g := s.world.Resource.Game

	g.SpawnTimer += dt
	if g.SpawnTimer >= SpawnInterval(g.Level, cfg.Enemy) {
		g.SpawnTimer = 0
		s.spawnEnemy()
	}

	threshold := cfg.Enemy.ShootInterval
	if cfg.Enemy.LegacyShootTiming {
		threshold *= dt
	}
	g.EnemyShootTimer += dt
	if g.EnemyShootTimer >= threshold {
		g.EnemyShootTimer = 0
		s.rollEnemyFire()
	}
}

// spawnEnemy places one enemy just above the top edge at a random x
func (s *SpawnSystem) spawnEnemy() {
	w := s.world
	cfg := w.Resource.Config
	rng := w.Resource.Random

	x := float64(rng.Source.Intn(int(cfg.Playfield.Width) - parameter.EnemyWidth))
	variant := rng.Source.Intn(parameter.EnemyVariantCount)

	var drop vmath.Random
	if rng.NewDropSource != nil {
		drop = rng.NewDropSource()
	}

	w.Enemies.Add(w.CreateEntity(), component.EnemyComponent{
		Bounds:  core.Rect{X: x, Y: -parameter.EnemyHeight, Width: parameter.EnemyWidth, Height: parameter.EnemyHeight},
		Variant: variant,
		Drop:    drop,
	})
	s.statSpawned.Add(1)
}

// rollEnemyFire gives every ready enemy an independent 1-in-FireOdds chance to shoot
func (s *SpawnSystem) rollEnemyFire() {
	w := s.world
	cfg := w.Resource.Config
	rng := w.Resource.Random.Source
	shots := w.Projectiles[core.FactionEnemy]

	for i := 0; i < w.Enemies.Len(); i++ {
		_, e := w.Enemies.At(i)
		if !e.CanShoot() || rng.Intn(cfg.Enemy.FireOdds) != 0 {
			continue
		}
		shots.Add(w.CreateEntity(), component.ProjectileComponent{
			Bounds: core.Rect{
				X:      e.Bounds.X + e.Bounds.Width/2 - parameter.CenterMuzzleHalfSize,
				Y:      e.Bounds.Bottom(),
				Width:  parameter.ProjectileWidth,
				Height: parameter.ProjectileHeight,
			},
			Vel:     core.Vec2{Y: cfg.Projectile.EnemySpeed},
			Faction: core.FactionEnemy,
		})
		e.ShootCooldown = cfg.Enemy.RefireDelay
		s.statEnemyShots.Add(1)
	}
}
