package constant

import "time"

// Tick
const (
	// TickInterval is the reference simulation step; velocities are expressed per tick
	TickInterval = 16 * time.Millisecond

	// TickSeconds is TickInterval in seconds
	TickSeconds = 0.016

	// FrameInterval is the render cadence of the terminal driver
	FrameInterval = 33 * time.Millisecond
)

// Playfield (world units, y-up, origin at centre)
const (
	FieldLeft   = -600.0
	FieldRight  = 600.0
	FieldBottom = -400.0
	FieldTop    = 400.0

	// FieldReferenceWidth and FieldReferenceHeight define the 3:2 reference viewport
	FieldReferenceWidth  = 1200.0
	FieldReferenceHeight = 800.0
	FieldReferenceAspect = 1.5
)

// Capacities
const (
	MaxBalls     = 3
	MaxPowerUps  = 5
	MaxTrail     = 20
	MaxParticles = 100

	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
