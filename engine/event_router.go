package engine

import "github.com/lixenwraith/pong-arena/event"

// maxDispatchRounds bounds handler-emitted event cascades within one tick
const maxDispatchRounds = 4

// EventRouter dispatches tick events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the simulation goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events emitted by handlers are dispatched in a following round
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.Queue
}

func NewEventRouter(queue *event.Queue) *EventRouter {
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

// DispatchAll drains the queue, routes every event and returns them in FIFO order
func (r *EventRouter) DispatchAll(w *World) []event.GameEvent {
	var all []event.GameEvent
	for round := 0; round < maxDispatchRounds; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(w, ev)
			}
		}
		all = append(all, events...)
	}
	return all
}

func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
