package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/pong-arena/status"
)

// worldMetrics caches registry pointers written once per tick
type worldMetrics struct {
	tick         *atomic.Int64
	running      *atomic.Bool
	scoreBottom  *atomic.Int64
	scoreTop     *atomic.Int64
	activeBalls  *atomic.Int64
	combo        *atomic.Int64
	totalHits    *atomic.Int64
	collected    *atomic.Int64
	achievements *atomic.Int64
	ballSpeed    *status.AtomicFloat
	maxSpeed     *status.AtomicFloat
	slowFactor   *status.AtomicFloat
	sessionID    *status.AtomicString
	mode         *status.AtomicString
	difficulty   *status.AtomicString
}

func newWorldMetrics(reg *status.Registry) worldMetrics {
	return worldMetrics{
		tick:         reg.Ints.Get("engine.tick"),
		running:      reg.Bools.Get("engine.running"),
		scoreBottom:  reg.Ints.Get("score.bottom"),
		scoreTop:     reg.Ints.Get("score.top"),
		activeBalls:  reg.Ints.Get("ball.active"),
		combo:        reg.Ints.Get("combo.multiplier"),
		totalHits:    reg.Ints.Get("hits.total"),
		collected:    reg.Ints.Get("powerup.collected"),
		achievements: reg.Ints.Get("achievement.unlocked"),
		ballSpeed:    reg.Floats.Get("ball.speed"),
		maxSpeed:     reg.Floats.Get("ball.max_speed"),
		slowFactor:   reg.Floats.Get("time.slow_factor"),
		sessionID:    reg.Strings.Get("session.id"),
		mode:         reg.Strings.Get("session.mode"),
		difficulty:   reg.Strings.Get("session.difficulty"),
	}
}

func (w *World) publishMetrics() {
	m := &w.metrics
	m.tick.Store(int64(w.tick))
	m.running.Store(w.running)
	m.scoreBottom.Store(int64(w.Stats.Scores[0]))
	m.scoreTop.Store(int64(w.Stats.Scores[1]))
	m.activeBalls.Store(int64(w.Balls.ActiveCount()))
	m.combo.Store(int64(w.Stats.ComboMultiplier))
	m.totalHits.Store(int64(w.Stats.TotalHits))
	m.collected.Store(int64(w.Stats.PowerUpsCollected))
	m.achievements.Store(int64(w.Achievements.UnlockedCount()))
	m.ballSpeed.Set(w.BallSpeed)
	m.maxSpeed.Set(w.Stats.MaxBallSpeed)
	m.slowFactor.Set(w.SlowFactor)
}
