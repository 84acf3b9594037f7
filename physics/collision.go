package physics

import (
	"math"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/vmath"
)

// BounceProfile tunes a paddle response
// Bottom and top paddles use asymmetric rules; profiles are package variables
type BounceProfile struct {
	Lift      float64 // Vertical magnitude multiplier (bottom)
	Kick      float64 // Vertical magnitude increment (top)
	HitFactor float64 // Horizontal contribution of normalized offset
	Carry     float64 // Fraction of incoming horizontal velocity kept (bottom)
	Boost     float64 // Speed multiplier when under cap (bottom)
}

var (
	BottomProfile = BounceProfile{
		Lift:      constant.BottomBounceLift,
		HitFactor: constant.BottomBounceHitFactor,
		Carry:     constant.BottomBounceCarry,
		Boost:     constant.BottomBounceBoost,
	}

	TopProfile = BounceProfile{
		Kick:      constant.TopBounceKick,
		HitFactor: constant.TopBounceHitFactor,
	}
)

// BottomContact tests a descending ball against the bottom paddle plane
// Contact requires the lower edge at or below plane and x within half-width, edges inclusive
// Returns the normalized offset in [-1, 1]
func BottomContact(b *component.Ball, paddleX, halfWidth, plane float64) (float64, bool) {
	if b.VY >= 0 || b.Y-b.Radius > plane {
		return 0, false
	}
	return offset(b.X, paddleX, halfWidth)
}

// TopContact tests an ascending ball against the top paddle plane
func TopContact(b *component.Ball, paddleX, halfWidth, plane float64) (float64, bool) {
	if b.VY <= 0 || b.Y+b.Radius < plane {
		return 0, false
	}
	return offset(b.X, paddleX, halfWidth)
}

func offset(x, paddleX, halfWidth float64) (float64, bool) {
	if halfWidth <= 0 || math.Abs(x-paddleX) > halfWidth {
		return 0, false
	}
	return vmath.Clamp((x-paddleX)/halfWidth, -1, 1), true
}

// ResolveBottom places the ball above plane and applies the accelerating bounce
// Result speed never exceeds speedCap; under the cap it grows by the boost factor
func ResolveBottom(b *component.Ball, hit, plane, speedCap float64) {
	p := &BottomProfile
	b.Y = plane + b.Radius
	b.VY = math.Abs(b.VY) * p.Lift
	b.VX = hit*p.HitFactor + b.VX*p.Carry

	speed := vmath.Magnitude(b.VX, b.VY)
	if speed > speedCap {
		b.VX, b.VY = vmath.SetMagnitude(b.VX, b.VY, speedCap)
		return
	}
	b.VX, b.VY = vmath.ScaleVector(b.VX, b.VY, p.Boost)
	b.VX, b.VY = vmath.ClampMagnitude(b.VX, b.VY, speedCap)
}

// ResolveTop places the ball below plane, applies the kick and renormalises to speed
// nudge is added to horizontal velocity before renormalisation
func ResolveTop(b *component.Ball, hit, plane, speed, nudge float64) {
	p := &TopProfile
	b.Y = plane - b.Radius
	b.VY = -(math.Abs(b.VY) + p.Kick)
	b.VX += hit*p.HitFactor + nudge
	b.VX, b.VY = vmath.SetMagnitude(b.VX, b.VY, speed)
}
