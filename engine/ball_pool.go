package engine

import (
	"math"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/physics"
	"github.com/lixenwraith/pong-arena/vmath"
)

// BallPool is a fixed arena of balls, the first free slot wins
type BallPool struct {
	Slots [constant.MaxBalls]component.Ball
}

// SpawnInitial deactivates every slot and activates slot 0 with a fresh trail
func (p *BallPool) SpawnInitial() *component.Ball {
	for i := range p.Slots {
		p.Slots[i].Active = false
		p.Slots[i].Trail.Reset()
	}
	b := &p.Slots[0]
	b.Active = true
	return b
}

// Reset recentres a ball with a random offset and launch angle at speed
func (p *BallPool) Reset(b *component.Ball, rng *vmath.FastRand, speed float64) {
	b.X = float64(rng.Intn(2*constant.BallSpawnOffset) - constant.BallSpawnOffset)
	b.Y = 0

	angle := vmath.DegToRad(float64(rng.Intn(2*constant.BallLaunchAngle) - constant.BallLaunchAngle))
	dir := 1.0
	if rng.Bool() {
		dir = -1
	}
	b.VX = speed * math.Sin(angle)
	b.VY = speed * math.Cos(angle) * dir

	b.Radius = constant.BallRadius
	b.Type = core.BallNormal
	b.Effect.Clear()
	b.Trail.Reset()
}

// Split activates the first free slot as a mirrored clone of src
// Returns the clone, nil when the pool is full
func (p *BallPool) Split(src *component.Ball) *component.Ball {
	if p.ActiveCount() >= constant.MaxBalls {
		return nil
	}
	for i := range p.Slots {
		b := &p.Slots[i]
		if b.Active {
			continue
		}
		*b = component.Ball{
			X:      src.X,
			Y:      src.Y,
			VX:     -src.VX,
			VY:     -src.VY,
			Radius: src.Radius,
			Type:   src.Type,
			Active: true,
		}
		return b
	}
	return nil
}

// Advance moves the ball and records the position in its trail
func (p *BallPool) Advance(b *component.Ball, steps float64) {
	physics.Advance(b, steps)
	b.Trail.Push(b.X, b.Y, b.Radius)
}

func (p *BallPool) ActiveCount() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Active {
			n++
		}
	}
	return n
}

// Each calls fn for every active ball in slot order
func (p *BallPool) Each(fn func(slot int, b *component.Ball)) {
	for i := range p.Slots {
		if p.Slots[i].Active {
			fn(i, &p.Slots[i])
		}
	}
}
