package system

import (
	"math"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/parameter"
	"github.com/lixenwraith/pong-arena/physics"
	"github.com/lixenwraith/pong-arena/vmath"
)

// AIController drives one paddle's target toward the predicted interception point
type AIController struct {
	side core.Side

	// Last decision, exposed for diagnostics
	Threat     int // Ball slot, -1 when none
	Prediction float64
	Arrival    float64 // Ticks until the threat reaches the paddle line
}

func NewAIController(side core.Side) *AIController {
	return &AIController{side: side, Threat: -1}
}

// ProfileFor returns the preset for a difficulty
func ProfileFor(d core.Difficulty) parameter.AIProfile {
	if d == core.DifficultyHard {
		return parameter.AIHard
	}
	return parameter.AIMedium
}

// Adapt raises accuracy and reaction for long rallies and lifetime hit totals
func Adapt(p parameter.AIProfile, consecutive, total int) parameter.AIProfile {
	if consecutive > parameter.AIRallyThreshold {
		p.Accuracy = math.Min(parameter.AIAccuracyCap, p.Accuracy+p.Adaptation*parameter.AIRallyAccuracy)
		p.Reaction = math.Min(parameter.AIRallyReactionCap, p.Reaction+p.Adaptation*parameter.AIRallyReaction)
	}
	if total > parameter.AILifetimeThreshold {
		learn := math.Min(parameter.AILifetimeCap, float64(total)*parameter.AILifetimeRate)
		p.Accuracy = math.Min(parameter.AIAccuracyCap, p.Accuracy+learn*parameter.AILifetimeAccuracy)
		p.Reaction = math.Min(parameter.AILifetimeReactionCap, p.Reaction+learn*parameter.AILifetimeReaction)
	}
	return p
}

// SelectThreat picks the active ball arriving soonest at this side's paddle line
func (a *AIController) SelectThreat(w *engine.World) (*component.Ball, int, float64) {
	plane := w.Bounds.BottomPaddleY()
	if a.side == core.SideTop {
		plane = w.Bounds.TopPaddleY()
	}

	var best *component.Ball
	slot, minTicks := -1, math.Inf(1)
	w.Balls.Each(func(i int, b *component.Ball) {
		if (a.side == core.SideBottom) != (b.VY < 0) {
			return
		}
		t, ok := physics.TimeToPlane(b.Y, b.VY, plane)
		if ok && t < minTicks {
			best, slot, minTicks = b, i, t
		}
	})
	return best, slot, minTicks
}

// Predict estimates the ball's x at arrival, blending the naive projection with the wall-bounce simulation
func Predict(b *component.Ball, ticks float64, bounds engine.Bounds, p parameter.AIProfile) float64 {
	naive := b.X + b.VX*ticks*p.Accuracy
	if math.Abs(b.VX) <= parameter.AIMinHorizontalSpeed {
		return naive
	}
	bounced := physics.PredictWallBounces(
		b.X, b.VX, ticks,
		bounds.Left+b.Radius, bounds.Right-b.Radius,
		parameter.AIWallRestitution,
	)
	return naive*(1-p.BounceWeight) + bounced*p.BounceWeight
}

// Update moves paddle's target for this tick; steps is the reference tick count
func (a *AIController) Update(w *engine.World, paddle *component.Paddle, steps float64) {
	prof := Adapt(ProfileFor(w.Difficulty), w.Stats.ConsecutiveHits, w.Stats.TotalHits)
	lo, hi := paddle.Limits(w.Bounds.Left, w.Bounds.Right)

	b, slot, ticks := a.SelectThreat(w)
	a.Threat = slot
	if b == nil {
		centre := (w.Bounds.Left + w.Bounds.Right) / 2
		rate := math.Min(1, parameter.AIRecenterRate*prof.Reaction*steps)
		paddle.TargetX += (centre - paddle.TargetX) * rate
		paddle.TargetX = vmath.Clamp(paddle.TargetX, lo, hi)
		return
	}

	a.Arrival = ticks
	seconds := ticks * constant.TickSeconds
	predict := Predict(b, ticks, w.Bounds, prof)

	if w.Difficulty != core.DifficultyHard && w.Rand.Float64() < prof.ErrorChance {
		predict += w.Rand.Range(-prof.MaxError, prof.MaxError) * (1 + seconds*parameter.AIErrorTimeFactor)
	}
	a.Prediction = predict

	gap := predict - paddle.TargetX
	dist := math.Abs(gap)
	step := constant.PaddleVelocity * prof.Reaction * prof.SpeedMult * parameter.AIStepScale * steps
	if dist > parameter.AIFarGap {
		step *= parameter.AIFarBoost
	}

	switch {
	case w.Difficulty == core.DifficultyHard && dist < parameter.AISnapGap && seconds < parameter.AISnapTimeSeconds:
		paddle.TargetX = predict
	case dist > parameter.AIDeadZone:
		paddle.TargetX += vmath.Sign(gap) * math.Min(step, dist)
	}
	paddle.TargetX = vmath.Clamp(paddle.TargetX, lo, hi)
}
