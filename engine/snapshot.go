package engine

import (
	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/event"
)

// BallView is a read-only copy of an active ball
type BallView struct {
	Slot      int                    `json:"slot"`
	X         float64                `json:"x"`
	Y         float64                `json:"y"`
	VX        float64                `json:"vx"`
	VY        float64                `json:"vy"`
	Radius    float64                `json:"radius"`
	Type      core.BallType          `json:"type"`
	Invisible bool                   `json:"invisible"`
	Trail     []component.TrailPoint `json:"trail,omitempty"`
}

// PaddleView is a read-only copy of a paddle
type PaddleView struct {
	Side      core.Side          `json:"side"`
	Control   core.ControlScheme `json:"control"`
	X         float64            `json:"x"`
	TargetX   float64            `json:"target_x"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Big       bool               `json:"big"`
	SpeedMult float64            `json:"speed_mult"`
}

// PowerUpView is a read-only copy of an active power-up
type PowerUpView struct {
	Slot     int              `json:"slot"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	Type     core.PowerUpType `json:"type"`
	Size     float64          `json:"size"`
	Rotation float64          `json:"rotation"`
}

// Snapshot is the immutable per-tick state handed to presentation collaborators
// Safe to share across goroutines once returned
type Snapshot struct {
	SessionID  string                     `json:"session_id"`
	Tick       uint64                     `json:"tick"`
	Mode       core.Mode                  `json:"mode"`
	Difficulty core.Difficulty            `json:"difficulty"`
	Running    bool                       `json:"running"`
	Bounds     Bounds                     `json:"bounds"`
	Balls      []BallView                 `json:"balls"`
	Paddles    [core.SideCount]PaddleView `json:"paddles"`
	PowerUps   []PowerUpView              `json:"powerups"`
	Particles  []component.Particle       `json:"particles,omitempty"`
	Stats      Stats                      `json:"stats"`
	ComboTime  float64                    `json:"combo_time"`
	BallSpeed  float64                    `json:"ball_speed"`
	SlowFactor float64                    `json:"slow_factor"`
	BigTime    float64                    `json:"big_time"`

	Achievements         []Achievement `json:"achievements"`
	AchievementsUnlocked int           `json:"achievements_unlocked"`

	Events []event.GameEvent `json:"events,omitempty"`
	Cues   []event.AudioCue  `json:"cues,omitempty"`
}

// Score returns the score of side
func (s *Snapshot) Score(side core.Side) int {
	return s.Stats.Scores[side]
}

func (w *World) snapshot(events []event.GameEvent) *Snapshot {
	s := &Snapshot{
		SessionID:  w.ID,
		Tick:       w.tick,
		Mode:       w.Mode,
		Difficulty: w.Difficulty,
		Running:    w.running,
		Bounds:     w.Bounds,
		Particles:  w.Particles.Live(),
		Stats:      w.Stats,
		ComboTime:  w.ComboTimer.Remaining,
		BallSpeed:  w.BallSpeed,
		SlowFactor: w.SlowFactor,
		BigTime:    w.BigTimer.Remaining,

		Achievements:         w.Achievements.List(),
		AchievementsUnlocked: w.Achievements.UnlockedCount(),

		Events: events,
		Cues:   event.Cues(events),
	}

	w.Balls.Each(func(slot int, b *component.Ball) {
		s.Balls = append(s.Balls, BallView{
			Slot:      slot,
			X:         b.X,
			Y:         b.Y,
			VX:        b.VX,
			VY:        b.VY,
			Radius:    b.Radius,
			Type:      b.Type,
			Invisible: b.Invisible(),
			Trail:     b.Trail.Live(),
		})
	})

	for i := range w.Paddles {
		p := &w.Paddles[i]
		s.Paddles[i] = PaddleView{
			Side:      p.Side,
			Control:   w.Controls[i],
			X:         p.X,
			TargetX:   p.TargetX,
			Width:     p.Width(),
			Height:    p.Height,
			Big:       p.Big,
			SpeedMult: p.SpeedMult,
		}
	}

	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if !pu.Active {
			continue
		}
		s.PowerUps = append(s.PowerUps, PowerUpView{
			Slot:     i,
			X:        pu.X,
			Y:        pu.Y,
			Type:     pu.Type,
			Size:     pu.Size,
			Rotation: pu.Rotation,
		})
	}
	return s
}
