package engine

import (
	"testing"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

type orderSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *orderSystem) Init()         {}
func (s *orderSystem) Name() string  { return s.name }
func (s *orderSystem) Priority() int { return s.priority }
func (s *orderSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&orderSystem{"c", 30, &log})
	w.AddSystem(&orderSystem{"a", 10, &log})
	w.AddSystem(&orderSystem{"b1", 20, &log})
	w.AddSystem(&orderSystem{"b2", 20, &log})

	w.Update()

	want := []string{"a", "b1", "b2", "c"}
	if len(log) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, log[i], want[i])
		}
	}
}

func TestWorldResetRestoresPlayer(t *testing.T) {
	ctx := newTestContext(t)
	w := ctx.World

	w.Player.Lives = 0
	w.Player.SpeedMultiplier = 1.7
	w.Player.Buffs[component.BuffRapidFire].Activate(3)
	w.Resource.Game.Score = 4200
	w.Resource.Game.Level = 5
	w.Enemies.Add(w.CreateEntity(), component.EnemyComponent{})
	w.Notify("hello")

	w.Reset()

	cfg := w.Resource.Config
	if w.Player.Lives != cfg.Player.StartingLives {
		t.Errorf("lives = %d, want %d", w.Player.Lives, cfg.Player.StartingLives)
	}
	if w.Player.SpeedMultiplier != parameter.BaseSpeedMultiplier {
		t.Errorf("speed multiplier = %v, want base", w.Player.SpeedMultiplier)
	}
	if w.Player.Buffs[component.BuffRapidFire].Active {
		t.Error("rapid fire survived reset")
	}
	if w.Resource.Game.Score != 0 || w.Resource.Game.Level != 1 {
		t.Errorf("progression = %d/%d, want 0/1", w.Resource.Game.Score, w.Resource.Game.Level)
	}
	if w.EntityCount() != 0 {
		t.Errorf("entity count = %d, want 0", w.EntityCount())
	}

	wantX := float64(int(cfg.Playfield.Width/2)) - parameter.PlayerWidth/2
	if w.Player.Bounds.X != wantX {
		t.Errorf("player x = %v, want %v", w.Player.Bounds.X, wantX)
	}
}

func TestDamagePlayerClampsAtZero(t *testing.T) {
	ctx := newTestContext(t)
	rec := newRecorder(event.EventPlayerDamaged)
	ctx.AddHandler(rec)

	ctx.World.Player.Lives = 1
	ctx.World.DamagePlayer(event.CauseEnemyEscaped)
	ctx.World.DamagePlayer(event.CauseEnemyCollision)
	ctx.Router.DispatchAll()

	if ctx.World.Player.Lives != 0 {
		t.Errorf("lives = %d, want 0", ctx.World.Player.Lives)
	}
	if len(rec.events) != 2 {
		t.Fatalf("recorded %d damage events, want 2", len(rec.events))
	}
	p := rec.events[0].Payload.(*event.PlayerDamagedPayload)
	if p.Cause != event.CauseEnemyEscaped || p.LivesLeft != 0 {
		t.Errorf("first payload = %+v", p)
	}
}

func TestSpawnExplosionRequestsSound(t *testing.T) {
	ctx := newTestContext(t)
	rec := newRecorder(event.EventSoundRequest)
	ctx.AddHandler(rec)

	box := core.Rect{X: 10, Y: 20, Width: 32, Height: 32}
	ctx.World.SpawnExplosion(box)
	ctx.Router.DispatchAll()

	if ctx.World.Explosions.Len() != 1 {
		t.Fatalf("explosions = %d, want 1", ctx.World.Explosions.Len())
	}
	_, ex := ctx.World.Explosions.At(0)
	if ex.Bounds != box || ex.Life != ctx.World.Resource.Config.Effect.ExplosionLife {
		t.Errorf("explosion = %+v", ex)
	}
	if len(rec.events) != 1 {
		t.Fatalf("sound requests = %d, want 1", len(rec.events))
	}
	if p := rec.events[0].Payload.(*event.SoundRequestPayload); p.SoundType != core.SoundExplosion {
		t.Errorf("sound = %v, want explosion", p.SoundType)
	}
}

func TestWorldClearReachesEveryStore(t *testing.T) {
	w := NewWorld()
	w.Enemies.Add(w.CreateEntity(), component.EnemyComponent{})
	w.PowerUps.Add(w.CreateEntity(), component.PowerUpComponent{})
	w.Explosions.Add(w.CreateEntity(), component.ExplosionComponent{})
	w.Notifications.Add(w.CreateEntity(), component.NotificationComponent{})
	for f := range w.Projectiles {
		w.Projectiles[f].Add(w.CreateEntity(), component.ProjectileComponent{})
	}

	want := 4 + len(w.Projectiles)
	if got := w.EntityCount(); got != want {
		t.Fatalf("EntityCount = %d, want %d", got, want)
	}

	w.Clear()
	if got := w.EntityCount(); got != 0 {
		t.Errorf("EntityCount after Clear = %d, want 0", got)
	}
	if e := w.CreateEntity(); e != 1 {
		t.Errorf("first entity after Clear = %d, want 1", e)
	}
}
