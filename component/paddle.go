package component

import (
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/vmath"
)

// Paddle is one side's bat
// X smooths toward TargetX; both stay within the playfield for the current width
type Paddle struct {
	Side      core.Side
	X         float64
	TargetX   float64
	BaseWidth float64
	Height    float64

	// Big doubles width while the shared big-paddle timer runs
	Big bool

	// SpeedMult scales manual movement, reverted by SpeedTimer
	SpeedMult  float64
	SpeedTimer Timer
}

// NewPaddle creates a centred paddle with baseline modifiers
func NewPaddle(side core.Side) Paddle {
	return Paddle{
		Side:      side,
		BaseWidth: constant.PaddleWidth,
		Height:    constant.PaddleHeight,
		SpeedMult: 1,
	}
}

// Reset recentres and drops all modifiers
func (p *Paddle) Reset() {
	p.X = 0
	p.TargetX = 0
	p.Big = false
	p.SpeedMult = 1
	p.SpeedTimer.Clear()
}

// Width returns the current collision width
func (p *Paddle) Width() float64 {
	if p.Big {
		return p.BaseWidth * constant.BigPaddleFactor
	}
	return p.BaseWidth
}

func (p *Paddle) HalfWidth() float64 {
	return p.Width() / 2
}

// Contains reports whether x lies within the current width, edges inclusive
func (p *Paddle) Contains(x float64) bool {
	half := p.HalfWidth()
	return x >= p.X-half && x <= p.X+half
}

// Limits returns the legal centre range for the current width
func (p *Paddle) Limits(left, right float64) (lo, hi float64) {
	half := p.HalfWidth()
	lo, hi = left+half, right-half
	if lo > hi {
		mid := (left + right) / 2
		return mid, mid
	}
	return lo, hi
}

// Clamp keeps X and TargetX within the legal range
func (p *Paddle) Clamp(left, right float64) {
	lo, hi := p.Limits(left, right)
	p.X = vmath.Clamp(p.X, lo, hi)
	p.TargetX = vmath.Clamp(p.TargetX, lo, hi)
}

// SetSpeedModifier applies a timed movement multiplier
func (p *Paddle) SetSpeedModifier(mult, seconds float64) {
	p.SpeedMult = mult
	p.SpeedTimer.Set(seconds)
}

// TickModifiers decays the speed modifier, returns true when it reverted
func (p *Paddle) TickModifiers(dt float64) bool {
	if p.SpeedTimer.Tick(dt) {
		p.SpeedMult = 1
		return true
	}
	return false
}
