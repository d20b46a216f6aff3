package engine

import (
	"github.com/lixenwraith/codedraw/event"
)

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before continuations and decay
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []event.EventType
}

// EventRouter dispatches queued input events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the tick goroutine
//   - Multiple handlers can register for the same event type, invoked in registration order
//   - An optional filter drops events before dispatch (pause)
//   - Pooled input payloads are released after every handler has seen them
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	filter   func(ev event.GameEvent) bool
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// SetFilter installs a predicate, events it rejects are dropped unhandled
func (r *EventRouter) SetFilter(fn func(ev event.GameEvent) bool) {
	r.filter = fn
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll(tick uint64) int {
	events := r.queue.Consume()
	n := 0
	for _, ev := range events {
		ev.Tick = tick
		if r.filter == nil || r.filter(ev) {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
			n++
		}
		event.Release(ev)
	}
	return n
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
