package system

import (
	"testing"

	"github.com/lixenwraith/pong-arena/component"
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

const epsilon = 1e-9

var keyControls = [2]core.ControlScheme{core.ControlKeys, core.ControlKeys}

type rig struct {
	w       *engine.World
	control *ControlSystem
	powerUp *PowerUpSystem
}

func newRig(mode core.Mode, diff core.Difficulty, controls [2]core.ControlScheme) *rig {
	w := engine.NewWorld(engine.Config{Seed: 42})
	r := &rig{
		w:       w,
		control: NewControlSystem(),
		powerUp: NewPowerUpSystem(w),
	}
	w.AddSystem(r.control)
	w.AddSystem(NewBallSystem(w, r.powerUp))
	w.AddSystem(r.powerUp)
	w.AddSystem(NewComboSystem())
	w.AddSystem(NewParticleSystem())
	w.AddSystem(NewAchievementSystem())
	w.Start(mode, diff, controls)
	return r
}

// place makes slot the only active ball with the given kinematics
func (r *rig) place(slot int, x, y, vx, vy float64) *component.Ball {
	for i := range r.w.Balls.Slots {
		r.w.Balls.Slots[i].Active = false
	}
	return r.add(slot, x, y, vx, vy)
}

// add activates slot alongside existing balls
func (r *rig) add(slot int, x, y, vx, vy float64) *component.Ball {
	b := &r.w.Balls.Slots[slot]
	*b = component.Ball{X: x, Y: y, VX: vx, VY: vy, Radius: constant.BallRadius, Active: true}
	return b
}

func (r *rig) powerUpAt(slot int, x, y float64, t core.PowerUpType) {
	r.w.PowerUps[slot] = component.PowerUp{X: x, Y: y, Type: t, Active: true, Size: 1}
}

func (r *rig) step(t *testing.T, in engine.Intents) *engine.Snapshot {
	t.Helper()
	snap, err := r.w.Update(constant.TickInterval, in)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	return snap
}

func countEvents(snap *engine.Snapshot, typ event.EventType) int {
	n := 0
	for _, ev := range snap.Events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
