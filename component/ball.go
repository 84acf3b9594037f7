package component

import (
	"math"

	"github.com/lixenwraith/pong-arena/core"
)

// Ball is one slot of the ball pool
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Type   core.BallType
	Active bool

	// Effect counts down temporary type-driven effects (invisibility)
	Effect Timer
	Trail  Trail
}

// Speed returns velocity magnitude in units per tick
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Invisible reports whether the ball should be hidden by the renderer
func (b *Ball) Invisible() bool {
	return b.Effect.Active()
}

// MovingUp reports positive vertical velocity (toward the top paddle)
func (b *Ball) MovingUp() bool {
	return b.VY > 0
}
