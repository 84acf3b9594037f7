// Package game assembles a playable session from the engine and its systems
package game

import (
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/system"
)

// Session bundles a world with handles to systems drivers interact with
type Session struct {
	*engine.World

	Control  *system.ControlSystem
	Ball     *system.BallSystem
	PowerUps *system.PowerUpSystem
}

// NewSession creates a world and registers systems in tick order:
// control, ball (with pickups), power-up, combo, particle, achievement
func NewSession(cfg engine.Config) *Session {
	w := engine.NewWorld(cfg)

	pu := system.NewPowerUpSystem(w)
	s := &Session{
		World:    w,
		Control:  system.NewControlSystem(),
		Ball:     system.NewBallSystem(w, pu),
		PowerUps: pu,
	}

	w.AddSystem(s.Control)
	w.AddSystem(s.Ball)
	w.AddSystem(s.PowerUps)
	w.AddSystem(system.NewComboSystem())
	w.AddSystem(system.NewParticleSystem())
	w.AddSystem(system.NewAchievementSystem())
	return s
}
