package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

func TestParticlesOnPaddleHit(t *testing.T) {
	r := newRig(core.ModePvP, core.DifficultyMedium, keyControls)
	s := NewParticleSystem()

	s.HandleEvent(r.w, event.GameEvent{
		Type:    event.EventPaddleHit,
		X:       10,
		Y:       20,
		Payload: &event.HitPayload{Ball: core.BallFire},
	})
	live := r.w.Particles.Live()
	if len(live) != 2 {
		t.Fatalf("Expected 2 particles, got %d", len(live))
	}
	if live[0].Color != component.ColorFire || live[1].Color != component.ColorHit {
		t.Errorf("Expected fire then hit colors, got %v %v", live[0].Color, live[1].Color)
	}
	if live[0].X != 10 || live[0].Y != 20 {
		t.Errorf("Expected particle at (10,20), got (%v,%v)", live[0].X, live[0].Y)
	}

	s.HandleEvent(r.w, event.GameEvent{Type: event.EventWallBounce})
	if n := len(r.w.Particles.Live()); n != 3 {
		t.Errorf("Expected 3 particles after wall spark, got %d", n)
	}
}

func TestParticlesDecay(t *testing.T) {
	r := newRig(core.ModePvP, core.DifficultyMedium, keyControls)
	s := NewParticleSystem()
	s.HandleEvent(r.w, event.GameEvent{Type: event.EventWallBounce})

	s.Update(r.w, engine.Tick{RealSteps: 1})
	live := r.w.Particles.Live()
	if len(live) != 1 || math.Abs(live[0].Life-(1-constant.ParticleLifeDecay)) > epsilon {
		t.Fatalf("Expected one particle with decayed life, got %+v", live)
	}

	steps := int(math.Ceil(1 / constant.ParticleLifeDecay))
	for i := 0; i < steps; i++ {
		s.Update(r.w, engine.Tick{RealSteps: 1})
	}
	if n := len(r.w.Particles.Live()); n != 0 {
		t.Errorf("Expected all particles dead, got %d", n)
	}
}
