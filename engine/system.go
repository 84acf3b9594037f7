package engine

import "github.com/lixenwraith/pong-arena/event"

// Tick carries the time step of one Update in the units systems need
type Tick struct {
	Real       float64 // Unscaled seconds, decays power-up and combo timers
	Scaled     float64 // Seconds after slow-time, used by control and ball effects
	Steps      float64 // Reference ticks after slow-time, used by motion
	RealSteps  float64 // Reference ticks unscaled, used by animation
	SlowFactor float64
	Intents    Intents
}

// System is one per-tick phase of the simulation
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(w *World, t Tick)
}

// Resetter is implemented by systems holding per-session state
// Called from World.Start after gameplay state is reinitialised
type Resetter interface {
	Reset(w *World)
}

// EventHandler processes events emitted during a tick
// Dispatch happens after all systems ran, before the snapshot is built
type EventHandler interface {
	HandleEvent(w *World, ev event.GameEvent)
	EventTypes() []event.EventType
}
