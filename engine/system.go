package engine

import "github.com/lixenwraith/starlight-reaver/event"

// System is one stage of the gameplay update
// Systems read DeltaTime from World.Resource.Time
type System interface {
	// Init resets the system to its starting state
	Init()

	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders Update calls; lower values run first
	Priority() int

	// Update advances the system by one gameplay tick
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase at the end of the tick
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
