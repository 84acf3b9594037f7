package component

import (
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/vmath"
)

// Color is an RGB triple for presentation
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Particle colors
var (
	ColorSpark = Color{255, 255, 255}
	ColorFire  = Color{255, 0, 0}
	ColorIce   = Color{128, 204, 255}
	ColorHit   = Color{255, 51, 25}
)

// Particle is a short-lived spark
type Particle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"-"`
	VY    float64 `json:"-"`
	Life  float64 `json:"life"`
	Size  float64 `json:"size"`
	Color Color   `json:"color"`
}

// ParticlePool is a fixed arena, first dead slot is reused
type ParticlePool struct {
	items [constant.MaxParticles]Particle
}

// Emit spawns a particle at the first dead slot, returns false when full
func (p *ParticlePool) Emit(x, y float64, c Color, rng *vmath.FastRand) bool {
	for i := range p.items {
		if p.items[i].Life > 0 {
			continue
		}
		p.items[i] = Particle{
			X:     x,
			Y:     y,
			VX:    float64(rng.Intn(100)-50) / 50,
			VY:    float64(rng.Intn(100)-50) / 50,
			Life:  1,
			Size:  float64(rng.Intn(5) + 2),
			Color: c,
		}
		return true
	}
	return false
}

// Update advances live particles by steps reference ticks
func (p *ParticlePool) Update(steps float64) {
	for i := range p.items {
		pt := &p.items[i]
		if pt.Life <= 0 {
			continue
		}
		pt.X += pt.VX * steps
		pt.Y += pt.VY * steps
		pt.VY -= constant.ParticleGravity * steps
		pt.Life -= constant.ParticleLifeDecay * steps
		pt.Size *= constant.ParticleSizeDecay
	}
}

// Live returns copies of live particles in slot order
func (p *ParticlePool) Live() []Particle {
	var out []Particle
	for _, pt := range p.items {
		if pt.Life > 0 {
			out = append(out, pt)
		}
	}
	return out
}

// Clear kills every particle
func (p *ParticlePool) Clear() {
	for i := range p.items {
		p.items[i].Life = 0
	}
}
