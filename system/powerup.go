package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
	"github.com/lixenwraith/pong-arena/vmath"
)

// PowerUpSystem spawns, animates and expires power-ups
// Pickups are resolved by Collide, called from BallSystem before paddle checks
type PowerUpSystem struct {
	spawnTimer float64

	statSpawned   *atomic.Int64
	statCollected *atomic.Int64
	statSplits    *atomic.Int64
}

func NewPowerUpSystem(w *engine.World) *PowerUpSystem {
	reg := w.Metrics()
	return &PowerUpSystem{
		statSpawned:   reg.Ints.Get("powerup.spawned"),
		statCollected: reg.Ints.Get("powerup.picked"),
		statSplits:    reg.Ints.Get("ball.splits"),
	}
}

func (s *PowerUpSystem) Name() string  { return "powerup" }
func (s *PowerUpSystem) Priority() int { return constant.PriorityPowerUp }

func (s *PowerUpSystem) Reset(w *engine.World) {
	s.spawnTimer = 0
}

func (s *PowerUpSystem) Update(w *engine.World, t engine.Tick) {
	s.spawnTimer += t.Real
	if s.spawnTimer >= constant.PowerUpSpawnInterval {
		s.Spawn(w)
		s.spawnTimer = 0
	}

	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if !pu.Active {
			continue
		}
		pu.Size = 0.8 + 0.2*math.Sin(w.AnimTime*3+float64(i))
		pu.Rotation += t.RealSteps
	}

	if w.BigTimer.Tick(t.Real) {
		w.Paddles[core.SideBottom].Big = false
		w.Paddles[core.SideTop].Big = false
		s.expired(w, core.PowerUpBigPaddle)
	}
	if w.SlowTimer.Tick(t.Real) {
		w.SlowFactor = 1
		s.expired(w, core.PowerUpSlowTime)
	}
}

// Spawn fills the first inactive slot, returns false when all slots are taken
func (s *PowerUpSystem) Spawn(w *engine.World) bool {
	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if pu.Active {
			continue
		}
		*pu = component.PowerUp{
			X:      float64(w.Rand.Intn(2*constant.PowerUpSpawnHalfWidth) - constant.PowerUpSpawnHalfWidth),
			Y:      float64(w.Rand.Intn(2*constant.PowerUpSpawnHalfHeight) - constant.PowerUpSpawnHalfHeight),
			Type:   core.PowerUpType(1 + w.Rand.Intn(int(core.PowerUpTypeCount)-1)),
			Active: true,
			Size:   1,
		}
		s.statSpawned.Add(1)
		w.Emit(event.GameEvent{
			Type:    event.EventPowerUpSpawned,
			X:       pu.X,
			Y:       pu.Y,
			Payload: &event.PowerUpPayload{Type: pu.Type, Slot: i},
		})
		return true
	}
	return false
}

// Collide applies every active power-up within pickup range of b exactly once
func (s *PowerUpSystem) Collide(w *engine.World, b *component.Ball) {
	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if !pu.Active {
			continue
		}
		if vmath.Distance(b.X, b.Y, pu.X, pu.Y) >= b.Radius+constant.PowerUpPickupRadius {
			continue
		}

		w.Stats.PowerUpsCollected++
		pu.Active = false
		s.statCollected.Add(1)

		// Ball heading up benefits bottom
		side := core.SideTop
		if b.VY > 0 {
			side = core.SideBottom
		}
		s.apply(w, b, pu.Type, side)

		w.Emit(event.GameEvent{
			Type:    event.EventPowerUpCollected,
			Side:    side,
			X:       pu.X,
			Y:       pu.Y,
			Payload: &event.PowerUpPayload{Type: pu.Type, Slot: i},
		})
		w.CheckAchievements()
	}
}

func (s *PowerUpSystem) apply(w *engine.World, b *component.Ball, t core.PowerUpType, side core.Side) {
	switch t {
	case core.PowerUpBigPaddle:
		p := &w.Paddles[side]
		p.Big = true
		p.Clamp(w.Bounds.Left, w.Bounds.Right)
		w.BigTimer.Set(constant.BigPaddleDuration)

	case core.PowerUpSlowBall:
		w.BallSpeed *= constant.SlowBallFactor
		w.Balls.Each(func(_ int, ball *component.Ball) {
			ball.VX, ball.VY = vmath.ScaleVector(ball.VX, ball.VY, constant.SlowBallFactor)
		})

	case core.PowerUpExtraPoints:
		w.Stats.Award(side, constant.ExtraPointsAward)
		w.Stats.ComboMultiplier = constant.ComboMultiplier
		w.ComboTimer.Set(constant.ExtraPointsDuration)

	case core.PowerUpSlowTime:
		w.SlowFactor = constant.SlowTimeFactor
		w.SlowTimer.Set(constant.SlowTimeDuration)

	case core.PowerUpFastPaddle:
		w.Paddles[side].SetSpeedModifier(constant.FastPaddleMult, constant.PaddleModifierDuration)

	case core.PowerUpInvisibleBall:
		b.Type = core.BallNormal
		b.Effect.Set(constant.InvisibleDuration)

	case core.PowerUpSplitBall:
		if clone := w.Balls.Split(b); clone != nil {
			s.statSplits.Add(1)
			w.Emit(event.GameEvent{Type: event.EventBallSplit, X: clone.X, Y: clone.Y})
		}
	}
}

func (s *PowerUpSystem) expired(w *engine.World, t core.PowerUpType) {
	w.Emit(event.GameEvent{
		Type:    event.EventPowerUpExpired,
		Payload: &event.PowerUpPayload{Type: t, Slot: -1},
	})
}
