package engine

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/starlight-reaver/asset"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine/fsm"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/status"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// Mode FSM registry names
const (
	ActionResetWorld   = "ResetWorld"
	GuardLivesDepleted = "LivesDepleted"
)

// Mode FSM leaf states mapped to game modes
var modeStates = map[string]core.GameMode{
	"MainMenu": core.ModeMainMenu,
	"Playing":  core.ModePlaying,
	"Paused":   core.ModePaused,
}

// ModeHandler consumes a tick's input and drives mode events
type ModeHandler interface {
	HandleInput(frame core.InputFrame)
}

// Options configures a GameContext
type Options struct {
	// Config is the tuning block; nil uses parameter.DefaultConfig
	Config *parameter.Config

	// Random overrides the seeded world random source
	Random vmath.Random

	// FSMPath loads the mode graph from a file instead of the embedded default
	FSMPath string
}

// GameContext owns the world and orchestrates one tick at a time
type GameContext struct {
	World  *World
	Router *EventRouter
	FSM    *fsm.Machine[*GameContext]

	eventQueue  *event.EventQueue
	modeHandler ModeHandler
}

// NewGameContext builds a world in MainMenu with all resources wired
// Systems and the mode handler are registered by the caller
func NewGameContext(opts Options) (*GameContext, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = parameter.DefaultConfig()
	}

	rng := opts.Random
	if rng == nil {
		rng = vmath.NewFastRand(cfg.Seed)
	}

	queue := event.NewEventQueue()
	world := NewWorld()
	world.Resource = Resource{
		Time:   &TimeResource{},
		Config: cfg,
		Game:   &GameStateResource{Mode: core.ModeMainMenu, Level: 1},
		Input:  &InputResource{},
		Event:  &EventQueueResource{Queue: queue},
		Random: &RandomResource{Source: rng},
		Menu:   &MenuResource{},
		Audio: &AudioResource{
			Volumes: [core.ChannelCount]float64{
				core.ChannelMusic:     parameter.DefaultMusicVolume,
				core.ChannelShoot:     parameter.DefaultShootVolume,
				core.ChannelExplosion: parameter.DefaultExplosionVolume,
			},
		},
		Status: status.NewRegistry(),
	}
	world.Resource.Random.NewDropSource = func() vmath.Random {
		return vmath.NewFastRand(uint64(rng.Intn(math.MaxInt32)) + 1)
	}

	ctx := &GameContext{
		World:      world,
		Router:     NewEventRouter(queue),
		eventQueue: queue,
	}

	if err := ctx.initFSM(opts.FSMPath); err != nil {
		return nil, err
	}

	world.Reset()
	return ctx, nil
}

func (ctx *GameContext) initFSM(path string) error {
	m := fsm.NewMachine[*GameContext]()

	m.RegisterAction(ActionResetWorld, func(c *GameContext, _ any) {
		c.World.Reset()
	})
	m.RegisterAction(fsm.ActionEmitEvent, func(c *GameContext, args any) {
		if a, ok := args.(*fsm.EmitEventArgs); ok {
			c.World.PushEvent(a.Type, a.Payload)
		}
	})
	m.RegisterGuard(GuardLivesDepleted, func(c *GameContext) bool {
		return c.World.Player.Lives <= 0
	})

	m.OnTransition = func(c *GameContext, from, to fsm.StateID) {
		name := m.StateName(to)
		c.World.Resource.Game.Mode = modeStates[name]
		log.Printf("mode: %s -> %s (frame %d)", m.StateName(from), name, c.World.FrameNumber())
	}

	if err := m.LoadConfigAuto(path, asset.DefaultModeFSMConfig); err != nil {
		return err
	}
	for name := range modeStates {
		if _, ok := m.GetStateID(name); !ok {
			return fmt.Errorf("mode FSM is missing required state '%s'", name)
		}
	}
	initial := m.StateName(m.InitialStateID)
	if _, ok := modeStates[initial]; !ok {
		return fmt.Errorf("mode FSM initial state '%s' is not a game mode", initial)
	}

	ctx.FSM = m
	if err := m.Init(ctx); err != nil {
		return fmt.Errorf("mode FSM init: %w", err)
	}
	ctx.World.Resource.Game.Mode = modeStates[initial]
	return nil
}

// SetModeHandler installs the input router consulted each tick
func (ctx *GameContext) SetModeHandler(h ModeHandler) {
	ctx.modeHandler = h
}

// AddSystem registers a gameplay system and its event subscriptions
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	if h, ok := s.(EventHandler); ok {
		ctx.Router.Register(h)
	}
}

// AddHandler registers an event-only handler
func (ctx *GameContext) AddHandler(h EventHandler) {
	ctx.Router.Register(h)
}

// Mode returns the current game mode
func (ctx *GameContext) Mode() core.GameMode {
	return ctx.World.Resource.Game.Mode
}

// SendModeEvent routes a mode event to the FSM immediately
// Returns true if it caused a transition
func (ctx *GameContext) SendModeEvent(et event.EventType) bool {
	return ctx.FSM.HandleEvent(ctx, et)
}

// RequestExit flags the host to quit after this tick
func (ctx *GameContext) RequestExit() {
	if ctx.World.Resource.Game.ExitRequested {
		return
	}
	ctx.World.Resource.Game.ExitRequested = true
	ctx.World.PushEvent(event.EventExitRequest, nil)
}

// ExitRequested reports whether the host should quit
func (ctx *GameContext) ExitRequested() bool {
	return ctx.World.Resource.Game.ExitRequested
}

// Tick advances the simulation by dt seconds with the given input
//
// Order:
//  1. frame count and input resources
//  2. mode handler (may transition the FSM)
//  3. gameplay systems, only if Playing both before and after step 2, then FSM tick transitions
//  4. event dispatch to collaborators
func (ctx *GameContext) Tick(dt float64, in core.InputFrame) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	res := &ctx.World.Resource
	res.Time.FrameNumber++
	res.Time.DeltaTime = dt
	res.Input.Frame = in

	before := ctx.Mode()
	if ctx.modeHandler != nil {
		ctx.modeHandler.HandleInput(in)
	}

	if before == core.ModePlaying && ctx.Mode() == core.ModePlaying {
		ctx.World.Update()
		res.Time.SimTime += dt
		ctx.FSM.Update(ctx, time.Duration(dt*float64(time.Second)))
	}

	ctx.Router.DispatchAll()
}
