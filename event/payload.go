package event

import "github.com/lixenwraith/pong-arena/core"

// GameEvent is one side-effect record produced during a tick
type GameEvent struct {
	Type      EventType `json:"type"`
	Tick      uint64    `json:"tick"`
	Side      core.Side `json:"side"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Intensity float64   `json:"intensity,omitempty"`
	Payload   any       `json:"payload,omitempty"`
}

// SessionPayload describes the selections of a started session
type SessionPayload struct {
	ID         string                `json:"id"`
	Mode       core.Mode             `json:"mode"`
	Difficulty core.Difficulty       `json:"difficulty"`
	Controls   [2]core.ControlScheme `json:"controls"`
}

// ScorePayload carries points awarded and the resulting scores
type ScorePayload struct {
	Points int `json:"points"`
	Bottom int `json:"bottom"`
	Top    int `json:"top"`
}

// PowerUpPayload identifies the power-up involved
type PowerUpPayload struct {
	Type core.PowerUpType `json:"type"`
	Slot int              `json:"slot"`
}

// AchievementPayload identifies the unlocked achievement
type AchievementPayload struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Name  string `json:"name"`
}

// HitPayload carries the type of the ball that struck a paddle
type HitPayload struct {
	Ball core.BallType `json:"ball"`
}
