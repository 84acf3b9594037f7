package system

import (
	"math"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
)

// ControlSystem moves paddle targets from intents or AI, then smooths and clamps paddles
type ControlSystem struct {
	ai [core.SideCount]*AIController
}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{
		ai: [core.SideCount]*AIController{
			NewAIController(core.SideBottom),
			NewAIController(core.SideTop),
		},
	}
}

func (s *ControlSystem) Name() string  { return "control" }
func (s *ControlSystem) Priority() int { return constant.PriorityControl }

// AI returns the controller of side
func (s *ControlSystem) AI(side core.Side) *AIController { return s.ai[side] }

func (s *ControlSystem) Update(w *engine.World, t engine.Tick) {
	alpha := 1 - math.Pow(1-constant.PaddleSmoothing, t.RealSteps)

	for side := range w.Paddles {
		p := &w.Paddles[side]
		p.TickModifiers(t.Real)

		switch w.Controls[side] {
		case core.ControlKeys:
			in := t.Intents[side]
			delta := constant.PaddleVelocity * constant.PaddleKeyBoost * p.SpeedMult * t.Scaled * constant.PaddleKeyScale
			if in.Right {
				p.TargetX += delta
			}
			if in.Left {
				p.TargetX -= delta
			}
		case core.ControlMouse:
			if in := t.Intents[side]; in.HasTarget {
				p.TargetX = in.TargetX
			}
		case core.ControlAI:
			s.ai[side].Update(w, p, t.RealSteps)
		}

		p.X += (p.TargetX - p.X) * alpha
		p.Clamp(w.Bounds.Left, w.Bounds.Right)
	}
}
