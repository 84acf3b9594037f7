package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/event"
	"github.com/lixenwraith/pong-arena/status"
	"github.com/lixenwraith/pong-arena/vmath"
)

// Config holds process-level session settings
type Config struct {
	// PvPBallSpeed is the session ball speed in PvP, clamped to the legal range
	PvPBallSpeed float64

	// Seed initialises the random source, zero selects a time-based seed
	Seed uint64

	// Metrics receives per-tick status, a private registry is created when nil
	Metrics *status.Registry
}

// World owns all gameplay state of one session
// Single-threaded: Start, Update and the setters must be called from one goroutine
type World struct {
	ID         string
	Mode       core.Mode
	Difficulty core.Difficulty
	Controls   [core.SideCount]core.ControlScheme
	Bounds     Bounds

	Balls     BallPool
	Paddles   [core.SideCount]component.Paddle
	PowerUps  [constant.MaxPowerUps]component.PowerUp
	Particles component.ParticlePool

	Stats        Stats
	Achievements *Tracker

	// BallSpeed is the session speed top paddle hits renormalise to
	BallSpeed float64

	// SlowFactor scales motion while SlowTimer runs
	SlowFactor float64
	SlowTimer  component.Timer

	// BigTimer is shared by both sides' big paddle grants
	BigTimer   component.Timer
	ComboTimer component.Timer

	// AnimTime accumulates scaled seconds for presentation animation
	AnimTime float64

	Rand *vmath.FastRand

	cfg     Config
	started bool
	running bool
	tick    uint64

	systems []System
	events  *event.Queue
	router  *EventRouter

	registry *status.Registry
	metrics  worldMetrics
}

// NewWorld creates an idle world; Start must be called before Update
func NewWorld(cfg Config) *World {
	cfg.PvPBallSpeed = pvpSpeed(cfg.PvPBallSpeed)
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	w := &World{
		cfg:          cfg,
		Bounds:       DefaultBounds(),
		Achievements: NewTracker(),
		Rand:         vmath.NewFastRand(cfg.Seed),
		SlowFactor:   1,
		events:       event.NewQueue(),
		registry:     cfg.Metrics,
	}
	w.router = NewEventRouter(w.events)
	w.metrics = newWorldMetrics(cfg.Metrics)
	for s := range w.Paddles {
		w.Paddles[s] = component.NewPaddle(core.Side(s))
	}
	return w
}

// pvpSpeed maps zero and non-finite values to the default
func pvpSpeed(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return constant.BallSpeedPvPDefault
	}
	return vmath.Clamp(v, constant.BallSpeedPvPMin, constant.BallSpeedPvPMax)
}

// AddSystem registers a system, keeps priority order and routes its events
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Metrics returns the status registry written each tick
func (w *World) Metrics() *status.Registry { return w.registry }

// Start (re)initialises gameplay state for the selections
// Invalid selections fall back to PvP, Medium and keys
func (w *World) Start(mode core.Mode, diff core.Difficulty, controls [core.SideCount]core.ControlScheme) {
	if !mode.Valid() {
		mode = core.ModePvP
	}
	if !diff.Valid() {
		diff = core.DifficultyMedium
	}
	for i, c := range controls {
		if !c.Valid() {
			controls[i] = core.ControlKeys
		}
	}
	if mode == core.ModeVsAI {
		controls[core.SideTop] = core.ControlAI
	}

	w.ID = uuid.NewString()
	w.Mode, w.Difficulty, w.Controls = mode, diff, controls
	w.BallSpeed = w.sessionSpeed()

	w.Stats.ResetMatch()
	w.ComboTimer.Clear()
	w.BigTimer.Clear()
	w.SlowTimer.Clear()
	w.SlowFactor = 1
	w.AnimTime = 0
	for s := range w.Paddles {
		w.Paddles[s].Reset()
	}
	for i := range w.PowerUps {
		w.PowerUps[i] = component.PowerUp{}
	}
	w.Particles.Clear()
	w.Balls.Reset(w.Balls.SpawnInitial(), w.Rand, w.BallSpeed)

	w.events.Reset()
	w.tick = 0
	w.started = true
	w.running = true

	for _, s := range w.systems {
		if r, ok := s.(Resetter); ok {
			r.Reset(w)
		}
	}

	w.Emit(event.GameEvent{
		Type: event.EventSessionStart,
		Payload: &event.SessionPayload{
			ID:         w.ID,
			Mode:       mode,
			Difficulty: diff,
			Controls:   controls,
		},
	})
	w.metrics.sessionID.Store(w.ID)
	w.metrics.mode.Store(mode.String())
	w.metrics.difficulty.Store(diff.String())
	w.publishMetrics()
}

func (w *World) sessionSpeed() float64 {
	if w.Mode == core.ModePvP {
		return w.cfg.PvPBallSpeed
	}
	if w.Difficulty == core.DifficultyHard {
		return constant.BallSpeedHard
	}
	return constant.BallSpeedMedium
}

// Update advances the session by dt and returns the resulting snapshot
// A paused world returns its current state without advancing
func (w *World) Update(dt time.Duration, in Intents) (*Snapshot, error) {
	if !w.started {
		return nil, fmt.Errorf("%w: Update before Start", ErrNotStarted)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: dt=%v", ErrInvalidTick, dt)
	}
	if !w.running {
		return w.snapshot(nil), nil
	}

	w.tick++
	secs := dt.Seconds()
	refSteps := float64(dt) / float64(constant.TickInterval)
	t := Tick{
		Real:       secs,
		Scaled:     secs * w.SlowFactor,
		Steps:      refSteps * w.SlowFactor,
		RealSteps:  refSteps,
		SlowFactor: w.SlowFactor,
		Intents:    in,
	}
	w.AnimTime += t.Scaled

	for _, s := range w.systems {
		s.Update(w, t)
	}

	if n := w.Balls.ActiveCount(); n < 1 || n > constant.MaxBalls {
		return nil, fmt.Errorf("%w: %d active at tick %d", ErrBallOverflow, n, w.tick)
	}

	events := w.router.DispatchAll(w)
	w.publishMetrics()
	return w.snapshot(events), nil
}

// Snapshot returns the current state without advancing or draining events
func (w *World) Snapshot() *Snapshot {
	return w.snapshot(nil)
}

func (w *World) Started() bool { return w.started }
func (w *World) Running() bool { return w.running }
func (w *World) Tick() uint64  { return w.tick }

// SetRunning pauses or resumes simulation
func (w *World) SetRunning(running bool) {
	w.running = running && w.started
	w.metrics.running.Store(w.running)
}

// RestartRally zeroes scores and relaunches every active ball
func (w *World) RestartRally() {
	if !w.started {
		return
	}
	w.Stats.Scores = [core.SideCount]int{}
	w.Stats.ResetCombo()
	w.ComboTimer.Clear()
	w.Balls.Each(func(_ int, b *component.Ball) {
		w.Balls.Reset(b, w.Rand, w.BallSpeed)
	})
	w.publishMetrics()
}

// SetAspect resizes the playfield to the viewport aspect and re-clamps paddles
func (w *World) SetAspect(aspect float64) {
	w.Bounds = BoundsForAspect(aspect)
	w.ClampPaddles()
}

// ClampPaddles keeps both paddles inside the field at their current width
func (w *World) ClampPaddles() {
	for s := range w.Paddles {
		w.Paddles[s].Clamp(w.Bounds.Left, w.Bounds.Right)
	}
}

// SetBallType assigns a type to every active ball
func (w *World) SetBallType(t core.BallType) {
	if t >= core.BallTypeCount {
		return
	}
	w.Balls.Each(func(_ int, b *component.Ball) {
		b.Type = t
	})
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(ev event.GameEvent) {
	ev.Tick = w.tick
	w.events.Push(ev)
}

// RecordSpeedIfMax raises the cumulative max speed and re-evaluates achievements
func (w *World) RecordSpeedIfMax(b *component.Ball) {
	if s := b.Speed(); s > w.Stats.MaxBallSpeed {
		w.Stats.MaxBallSpeed = s
		w.CheckAchievements()
	}
}

// CheckAchievements evaluates unlock conditions and emits an event per unlock
func (w *World) CheckAchievements() {
	p := Progress{
		Mode:              w.Mode,
		Difficulty:        w.Difficulty,
		Scores:            w.Stats.Scores,
		ConsecutiveHits:   w.Stats.ConsecutiveHits,
		MaxBallSpeed:      w.Stats.MaxBallSpeed,
		PowerUpsCollected: w.Stats.PowerUpsCollected,
	}
	for _, i := range w.Achievements.Evaluate(&p) {
		a := w.Achievements.Get(i)
		w.Emit(event.GameEvent{
			Type:    event.EventAchievementUnlocked,
			Payload: &event.AchievementPayload{Index: i, Key: a.Key, Name: a.Name},
		})
	}
}

// EnsureBall relaunches slot 0 when no ball is active
func (w *World) EnsureBall() {
	if w.Balls.ActiveCount() > 0 {
		return
	}
	b := &w.Balls.Slots[0]
	w.Balls.Reset(b, w.Rand, w.BallSpeed)
	b.Active = true
}

// PaddleSpeedCap returns the bottom bounce speed cap for the mode
func (w *World) PaddleSpeedCap() float64 {
	if w.Mode == core.ModeVsAI {
		return constant.BottomSpeedCapVsAI
	}
	return constant.BottomSpeedCapPvP
}
