package physics

import (
	"math"

	"github.com/lixenwraith/pong-arena/component"
)

// Advance integrates position by velocity over steps reference ticks
func Advance(b *component.Ball, steps float64) {
	b.X += b.VX * steps
	b.Y += b.VY * steps
}

// ReflectWalls clamps the ball inside [left, right] and turns horizontal velocity inward
// Reflection is elastic: speed is preserved exactly. Returns true on contact
func ReflectWalls(b *component.Ball, left, right float64) bool {
	switch {
	case b.X+b.Radius > right:
		b.X = right - b.Radius
		b.VX = -math.Abs(b.VX)
		return true
	case b.X-b.Radius < left:
		b.X = left + b.Radius
		b.VX = math.Abs(b.VX)
		return true
	}
	return false
}

// OutOfBounds reports which scoring edge the ball crossed
// below: exited under bottom, above: exited over top
func OutOfBounds(b *component.Ball, bottom, top float64) (below, above bool) {
	return b.Y < bottom, b.Y > top
}
