package system

import (
	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

// ParticleSystem ages sparks and emits new ones for wall and paddle contacts
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Name() string  { return "particle" }
func (s *ParticleSystem) Priority() int { return constant.PriorityParticle }

func (s *ParticleSystem) Update(w *engine.World, t engine.Tick) {
	w.Particles.Update(t.RealSteps)
}

func (s *ParticleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventWallBounce, event.EventPaddleHit}
}

func (s *ParticleSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventWallBounce:
		w.Particles.Emit(ev.X, ev.Y, component.ColorSpark, w.Rand)
	case event.EventPaddleHit:
		if p, ok := ev.Payload.(*event.HitPayload); ok {
			switch p.Ball {
			case core.BallFire:
				w.Particles.Emit(ev.X, ev.Y, component.ColorFire, w.Rand)
			case core.BallIce:
				w.Particles.Emit(ev.X, ev.Y, component.ColorIce, w.Rand)
			}
		}
		w.Particles.Emit(ev.X, ev.Y, component.ColorHit, w.Rand)
	}
}
