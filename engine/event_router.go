package engine

import (
	"log"

	"github.com/lixenwraith/starlight-reaver/event"
)

// maxDispatchRounds bounds handler-to-handler cascades within one tick
const maxDispatchRounds = 8

// EventRouter delivers queued events to handlers on the simulation goroutine
// Handlers of one type run in registration order; events run in push order
// An event pushed by a handler is delivered in a later round of the same DispatchAll
type EventRouter struct {
	queue    *event.EventQueue
	handlers map[event.EventType][]EventHandler
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		queue:    queue,
		handlers: make(map[event.EventType][]EventHandler),
	}
}

// Register subscribes handler to every type it declares
func (r *EventRouter) Register(handler EventHandler) {
	for _, et := range handler.EventTypes() {
		r.handlers[et] = append(r.handlers[et], handler)
	}
}

// Subscribers reports how many handlers receive et
func (r *EventRouter) Subscribers(et event.EventType) int {
	return len(r.handlers[et])
}

// DispatchAll drains the queue and returns the number of events delivered
// Events still queued after the last round stay for the next tick
func (r *EventRouter) DispatchAll() int {
	delivered := 0
	for range maxDispatchRounds {
		batch := r.queue.Consume()
		if len(batch) == 0 {
			return delivered
		}
		for _, ev := range batch {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		delivered += len(batch)
	}
	if n := r.queue.Len(); n > 0 {
		log.Printf("Event cascade exceeded %d rounds, %d events deferred", maxDispatchRounds, n)
	}
	return delivered
}
