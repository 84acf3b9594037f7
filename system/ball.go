package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
	"github.com/lixenwraith/pong-arena/physics"
)

// BallSystem moves balls and resolves wall, power-up, paddle and scoring contacts
// Per ball order: effect decay, advance, speed record, walls, pickups, bottom, top, scoring
type BallSystem struct {
	powerUps *PowerUpSystem

	statWalls  *atomic.Int64
	statBounce *atomic.Int64
	statScores *atomic.Int64
}

// NewBallSystem wires pickups through powerUps, which may be nil
func NewBallSystem(w *engine.World, powerUps *PowerUpSystem) *BallSystem {
	reg := w.Metrics()
	return &BallSystem{
		powerUps:   powerUps,
		statWalls:  reg.Ints.Get("ball.wall_bounces"),
		statBounce: reg.Ints.Get("ball.paddle_bounces"),
		statScores: reg.Ints.Get("ball.scored"),
	}
}

func (s *BallSystem) Name() string  { return "ball" }
func (s *BallSystem) Priority() int { return constant.PriorityBall }

func (s *BallSystem) Update(w *engine.World, t engine.Tick) {
	for i := range w.Balls.Slots {
		b := &w.Balls.Slots[i]
		if !b.Active {
			continue
		}

		b.Effect.Tick(t.Scaled)
		w.Balls.Advance(b, t.Steps)
		w.RecordSpeedIfMax(b)

		if physics.ReflectWalls(b, w.Bounds.Left, w.Bounds.Right) {
			s.statWalls.Add(1)
			w.Emit(event.GameEvent{Type: event.EventWallBounce, X: b.X, Y: b.Y})
		}

		if s.powerUps != nil {
			s.powerUps.Collide(w, b)
		}

		bottom := &w.Paddles[core.SideBottom]
		if hit, ok := physics.BottomContact(b, bottom.X, bottom.HalfWidth(), w.Bounds.BottomPlane()); ok {
			physics.ResolveBottom(b, hit, w.Bounds.BottomPlane(), w.PaddleSpeedCap())
			s.statBounce.Add(1)
		}

		top := &w.Paddles[core.SideTop]
		if hit, ok := physics.TopContact(b, top.X, top.HalfWidth(), w.Bounds.TopPlane()); ok {
			s.topHit(w, b, top, hit)
		}

		below, above := physics.OutOfBounds(b, w.Bounds.Bottom, w.Bounds.Top)
		switch {
		case below:
			s.score(w, b, core.SideTop)
		case above:
			s.score(w, b, core.SideBottom)
		}
	}
}

func (s *BallSystem) topHit(w *engine.World, b *component.Ball, top *component.Paddle, hit float64) {
	var nudge float64
	if b.Type == core.BallMagnetic {
		nudge = (top.X - b.X) * constant.MagneticPull
	}
	physics.ResolveTop(b, hit, w.Bounds.TopPlane(), w.BallSpeed, nudge)
	s.statBounce.Add(1)

	w.Stats.ConsecutiveHits++
	w.Stats.TotalHits++
	if w.Stats.ConsecutiveHits >= constant.ComboThreshold {
		if w.Stats.ComboMultiplier != constant.ComboMultiplier {
			w.Emit(event.GameEvent{Type: event.EventComboStart, Side: core.SideTop, X: b.X, Y: b.Y})
		}
		w.Stats.ComboMultiplier = constant.ComboMultiplier
		w.ComboTimer.Set(constant.ComboDuration)
	}

	switch b.Type {
	case core.BallFire:
		w.BallSpeed += constant.FireSpeedIncrease
	case core.BallIce:
		w.Paddles[core.SideBottom].SetSpeedModifier(constant.IceSpeedMult, constant.PaddleModifierDuration)
	}

	w.Emit(event.GameEvent{
		Type:      event.EventPaddleHit,
		Side:      core.SideTop,
		X:         b.X,
		Y:         b.Y,
		Intensity: math.Abs(hit),
		Payload:   &event.HitPayload{Ball: b.Type},
	})
}

// score awards the combo multiplier to scorer and retires the ball
func (s *BallSystem) score(w *engine.World, b *component.Ball, scorer core.Side) {
	points := w.Stats.ComboMultiplier
	w.Stats.Award(scorer, points)
	x, y := b.X, b.Y
	b.Active = false
	w.EnsureBall()

	w.Stats.ResetCombo()
	w.ComboTimer.Clear()
	s.statScores.Add(1)

	w.Emit(event.GameEvent{
		Type: event.EventScore,
		Side: scorer,
		X:    x,
		Y:    y,
		Payload: &event.ScorePayload{
			Points: points,
			Bottom: w.Stats.Scores[core.SideBottom],
			Top:    w.Stats.Scores[core.SideTop],
		},
	})
}
