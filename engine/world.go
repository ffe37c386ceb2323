package engine

import (
	"math"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// World contains all entities and their components using typed stores
type World struct {
	nextEntityID core.Entity

	Resource Resource

	// Player is the singleton player state
	Player component.PlayerComponent

	Enemies       *Store[component.EnemyComponent]
	Projectiles   [core.FactionCount]*Store[component.ProjectileComponent]
	PowerUps      *Store[component.PowerUpComponent]
	Explosions    *Store[component.ExplosionComponent]
	Notifications *Store[component.NotificationComponent]

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a world with empty stores; resources are wired by GameContext
func NewWorld() *World {
	w := &World{
		nextEntityID:  1,
		Enemies:       NewStore[component.EnemyComponent](),
		PowerUps:      NewStore[component.PowerUpComponent](),
		Explosions:    NewStore[component.ExplosionComponent](),
		Notifications: NewStore[component.NotificationComponent](),
	}
	for f := range w.Projectiles {
		w.Projectiles[f] = NewStore[component.ProjectileComponent]()
	}

	w.allStores = []AnyStore{w.Enemies, w.PowerUps, w.Explosions, w.Notifications}
	for _, s := range w.Projectiles {
		w.allStores = append(w.allStores, s)
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// EntityCount returns the number of live entities across all stores
func (w *World) EntityCount() int {
	n := 0
	for _, s := range w.allStores {
		n += s.Len()
	}
	return n
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, s := range w.allStores {
		s.Clear()
	}
}

// Reset starts a new game: empty collections, fresh player, zeroed progression
func (w *World) Reset() {
	w.Clear()

	cfg := w.Resource.Config
	w.Player = NewPlayer(cfg)

	g := w.Resource.Game
	g.Score = 0
	g.Level = 1
	g.SpawnTimer = 0
	g.EnemyShootTimer = 0
}

// NewPlayer builds the starting player state for cfg
func NewPlayer(cfg *parameter.Config) component.PlayerComponent {
	return component.PlayerComponent{
		Bounds: core.Rect{
			X:      math.Floor(cfg.Playfield.Width/2) - parameter.PlayerWidth/2,
			Y:      cfg.Playfield.Height - parameter.PlayerStartOffsetY,
			Width:  parameter.PlayerWidth,
			Height: parameter.PlayerHeight,
		},
		Lives:            cfg.Player.StartingLives,
		DamageMultiplier: parameter.BaseDamageMultiplier,
		SpeedMultiplier:  parameter.BaseSpeedMultiplier,
		ShootCooldown:    cfg.Player.ShootCooldown,
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Stable insertion sort keeps registration order for equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	if w.Resource.Time == nil {
		return 0
	}
	return w.Resource.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resource.Event == nil {
		return
	}
	w.Resource.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// Notify enqueues an on-screen message with the configured lifetime
func (w *World) Notify(message string) {
	w.Notifications.Add(w.CreateEntity(), component.NotificationComponent{
		Message: message,
		Life:    w.Resource.Config.Effect.NotificationLife,
	})
}

// SpawnExplosion adds a visual burst covering bounds
func (w *World) SpawnExplosion(bounds core.Rect) {
	life := w.Resource.Config.Effect.ExplosionLife
	w.Explosions.Add(w.CreateEntity(), component.ExplosionComponent{
		Bounds:   bounds,
		Life:     life,
		Duration: life,
	})
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundExplosion})
}

// DamagePlayer removes one life, clamped at zero
func (w *World) DamagePlayer(cause event.DamageCause) {
	w.Player.Lives = vmath.ClampInt(w.Player.Lives-1, 0, w.Resource.Config.Player.MaxLives)
	w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
		Cause:     cause,
		LivesLeft: w.Player.Lives,
	})
}
