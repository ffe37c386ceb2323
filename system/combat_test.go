package system

import (
	"testing"

	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

func TestProjectileKillsAtMostOneEnemy(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)

	// Two stacked enemies under one projectile
	addEnemy(w, 100, 100, vmath.NewSequenceRand(99))
	addEnemy(w, 100, 104, vmath.NewSequenceRand(99))
	addShot(w, core.FactionPlayer, 110, 110, core.Vec2{Y: -400})

	step(ctx, s, 0.016)

	if w.Enemies.Len() != 1 {
		t.Errorf("Expected 1 enemy left, got %d", w.Enemies.Len())
	}
	if w.Projectiles[core.FactionPlayer].Len() != 0 {
		t.Errorf("Expected projectile consumed")
	}
	if w.Resource.Game.Score != parameter.PointsPerKill {
		t.Errorf("Expected score %d, got %d", parameter.PointsPerKill, w.Resource.Game.Score)
	}
	if w.Explosions.Len() != 1 {
		t.Errorf("Expected 1 explosion, got %d", w.Explosions.Len())
	}
}

func TestEnemyScoredOncePerTick(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)

	addEnemy(w, 100, 100, vmath.NewSequenceRand(99))
	addShot(w, core.FactionPlayer, 105, 105, core.Vec2{Y: -400})
	addShot(w, core.FactionPlayer, 115, 110, core.Vec2{Y: -400})
	addShot(w, core.FactionMultiShot, 110, 108, core.Vec2{Y: -400})

	step(ctx, s, 0.016)

	if w.Resource.Game.Score != parameter.PointsPerKill {
		t.Errorf("Expected a single kill, got score %d", w.Resource.Game.Score)
	}
	remaining := w.Projectiles[core.FactionPlayer].Len() + w.Projectiles[core.FactionMultiShot].Len()
	if remaining != 2 {
		t.Errorf("Expected 2 surviving projectiles, got %d", remaining)
	}
}

func TestKillUpdatesLevel(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)

	w.Resource.Game.Score = 900
	addEnemy(w, 100, 100, vmath.NewSequenceRand(99))
	addShot(w, core.FactionRapidFire, 110, 110, core.Vec2{Y: -600})

	step(ctx, s, 0.016)

	if w.Resource.Game.Level != 2 {
		t.Errorf("Expected level 2 after reaching 1000, got %d", w.Resource.Game.Level)
	}
}

func TestDropUsesEnemySource(t *testing.T) {
	tests := []struct {
		name     string
		script   []int
		wantDrop bool
		wantType core.PowerUpType
	}{
		{"roll 29 drops", []int{29, 3}, true, core.PowerUpRapidFire},
		{"roll 30 keeps", []int{30}, false, 0},
		{"roll 0 drops health", []int{0, 0}, true, core.PowerUpHealth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newPlayingContext(t)
			w := ctx.World
			s := NewCombatSystem(w)

			addEnemy(w, 200, 50, vmath.NewSequenceRand(tt.script...))
			addShot(w, core.FactionPlayer, 210, 60, core.Vec2{Y: -400})
			step(ctx, s, 0.016)

			if got := w.PowerUps.Len() == 1; got != tt.wantDrop {
				t.Fatalf("Expected drop=%v, got %d power-ups", tt.wantDrop, w.PowerUps.Len())
			}
			if !tt.wantDrop {
				return
			}
			_, p := w.PowerUps.At(0)
			if p.Type != tt.wantType {
				t.Errorf("Expected type %v, got %v", tt.wantType, p.Type)
			}
			if p.Bounds.X != 200 || p.Bounds.Y != 50 {
				t.Errorf("Expected drop at enemy position, got (%v,%v)", p.Bounds.X, p.Bounds.Y)
			}
		})
	}
}

func TestDropRateThirtyPercent(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)
	rng := vmath.NewFastRand(12345)

	const trials = 20000
	drops := 0
	for i := 0; i < trials; i++ {
		addEnemy(w, 200, 50, rng)
		addShot(w, core.FactionPlayer, 210, 60, core.Vec2{Y: -400})
		step(ctx, s, 0.016)
		drops += w.PowerUps.Len()
		w.PowerUps.Clear()
		w.Explosions.Clear()
	}

	rate := float64(drops) / trials
	if rate < 0.28 || rate > 0.32 {
		t.Errorf("Expected drop rate near 0.30, got %.4f", rate)
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)
	lives := w.Player.Lives
	pb := w.Player.Bounds

	addShot(w, core.FactionEnemy, pb.X+10, pb.Y+10, core.Vec2{Y: 300})
	addShot(w, core.FactionEnemy, 5, 5, core.Vec2{Y: 300})
	step(ctx, s, 0.016)

	if w.Player.Lives != lives-1 {
		t.Errorf("Expected %d lives, got %d", lives-1, w.Player.Lives)
	}
	if w.Projectiles[core.FactionEnemy].Len() != 1 {
		t.Errorf("Expected the miss to survive, got %d", w.Projectiles[core.FactionEnemy].Len())
	}
	_, ex := w.Explosions.At(0)
	if ex.Bounds != pb {
		t.Errorf("Expected explosion at player box, got %+v", ex.Bounds)
	}
}

func TestEnemyRammingPlayer(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)
	lives := w.Player.Lives
	pb := w.Player.Bounds

	addEnemy(w, pb.X+5, pb.Y-5, nil)
	step(ctx, s, 0.016)

	if w.Enemies.Len() != 0 {
		t.Errorf("Expected rammer destroyed")
	}
	if w.Player.Lives != lives-1 {
		t.Errorf("Expected %d lives, got %d", lives-1, w.Player.Lives)
	}
	if w.Resource.Game.Score != 0 {
		t.Errorf("Ramming must not score, got %d", w.Resource.Game.Score)
	}
}

func TestPickupUsesEnlargedBox(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)
	pb := w.Player.Bounds

	// 10px gap to the left is inside the 20px margin
	addPowerUp(w, core.PowerUpDamage, pb.X-parameter.PowerUpWidth-10, pb.Y)
	// 30px gap above is outside it
	far := addPowerUp(w, core.PowerUpDamage, pb.X, pb.Y-parameter.PowerUpHeight-30)

	step(ctx, s, 0.016)

	if w.PowerUps.Len() != 1 || !w.PowerUps.Has(far) {
		t.Fatalf("Expected only the far power-up to remain, got %d", w.PowerUps.Len())
	}
	if w.Player.DamageMultiplier != 1.5 {
		t.Errorf("Expected damage 1.5, got %v", w.Player.DamageMultiplier)
	}
}

func TestPowerUpConsumedWithoutEffect(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewCombatSystem(w)
	w.Player.Lives = w.Resource.Config.Player.MaxLives
	pb := w.Player.Bounds

	addPowerUp(w, core.PowerUpHealth, pb.X, pb.Y)
	step(ctx, s, 0.016)

	if w.PowerUps.Len() != 0 {
		t.Error("Expected power-up consumed")
	}
	if w.Player.Lives != w.Resource.Config.Player.MaxLives {
		t.Errorf("Lives exceeded max: %d", w.Player.Lives)
	}
	if w.Notifications.Len() != 0 {
		t.Errorf("Expected no notification, got %d", w.Notifications.Len())
	}
}
