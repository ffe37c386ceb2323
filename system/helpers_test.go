package system

import (
	"testing"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// newPlayingContext returns a context already in Playing with a scripted random source
func newPlayingContext(t *testing.T, values ...int) *engine.GameContext {
	t.Helper()
	ctx, err := engine.NewGameContext(engine.Options{Random: vmath.NewSequenceRand(values...)})
	if err != nil {
		t.Fatalf("NewGameContext: %v", err)
	}
	ctx.SendModeEvent(event.EventGameStart)
	if ctx.Mode() != core.ModePlaying {
		t.Fatalf("Expected Playing, got %v", ctx.Mode())
	}
	ctx.Router.DispatchAll()
	return ctx
}

// step runs one system update with dt
func step(ctx *engine.GameContext, s engine.System, dt float64) {
	ctx.World.Resource.Time.DeltaTime = dt
	s.Update()
}

func addEnemy(w *engine.World, x, y float64, drop vmath.Random) core.Entity {
	e := w.CreateEntity()
	w.Enemies.Add(e, component.EnemyComponent{
		Bounds: core.Rect{X: x, Y: y, Width: parameter.EnemyWidth, Height: parameter.EnemyHeight},
		Drop:   drop,
	})
	return e
}

func addShot(w *engine.World, f core.Faction, x, y float64, vel core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Projectiles[f].Add(e, component.ProjectileComponent{
		Bounds:  core.Rect{X: x, Y: y, Width: parameter.ProjectileWidth, Height: parameter.ProjectileHeight},
		Vel:     vel,
		Faction: f,
	})
	return e
}

func addPowerUp(w *engine.World, t core.PowerUpType, x, y float64) core.Entity {
	e := w.CreateEntity()
	w.PowerUps.Add(e, component.PowerUpComponent{
		Type:   t,
		Bounds: core.Rect{X: x, Y: y, Width: parameter.PowerUpWidth, Height: parameter.PowerUpHeight},
	})
	return e
}

// recorder captures dispatched events of the given types
type recorder struct {
	types  []event.EventType
	events []event.GameEvent
}

func (r *recorder) EventTypes() []event.EventType { return r.types }
func (r *recorder) HandleEvent(ev event.GameEvent) { r.events = append(r.events, ev) }

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
