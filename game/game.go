// Package game assembles a runnable simulation from the engine, systems and mode router
package game

import (
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/mode"
	"github.com/lixenwraith/starlight-reaver/system"
)

// Game is a wired GameContext with its mode router
type Game struct {
	Ctx    *engine.GameContext
	Router *mode.Router
}

// New builds a game in MainMenu; player may be nil for silent runs
func New(opts engine.Options, player engine.AudioPlayer) (*Game, error) {
	ctx, err := engine.NewGameContext(opts)
	if err != nil {
		return nil, err
	}
	ctx.World.Resource.Audio.Player = player

	w := ctx.World
	ctx.AddSystem(system.NewPlayerSystem(w))
	ctx.AddSystem(system.NewKineticSystem(w))
	ctx.AddSystem(system.NewSpawnSystem(w))
	ctx.AddSystem(system.NewCombatSystem(w))
	ctx.AddSystem(system.NewBuffSystem(w))
	ctx.AddSystem(system.NewProgressionSystem(w))
	ctx.AddSystem(system.NewExplosionSystem(w))
	ctx.AddSystem(system.NewNotificationSystem(w))
	ctx.AddSystem(system.NewStatusSystem(w))

	ctx.AddHandler(system.NewAudioSystem(w))

	return &Game{
		Ctx:    ctx,
		Router: mode.NewRouter(ctx),
	}, nil
}

// Tick advances one step
func (g *Game) Tick(dt float64, in core.InputFrame) {
	g.Ctx.Tick(dt, in)
}

// Snapshot returns the world view after the last tick
func (g *Game) Snapshot() engine.Snapshot {
	return g.Ctx.Snapshot()
}

// Done reports whether an exit was requested
func (g *Game) Done() bool {
	return g.Ctx.ExitRequested()
}
