package system

import (
	"testing"

	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

func TestComboExpiry(t *testing.T) {
	r := newRig(core.ModePvP, core.DifficultyMedium, keyControls)
	r.place(0, 0, 0, 0, 1)
	r.w.Stats.ComboMultiplier = 2
	r.w.Stats.ConsecutiveHits = 4
	r.w.ComboTimer.Set(0.02)

	r.step(t, engine.Intents{})
	if r.w.Stats.ComboMultiplier != 2 {
		t.Fatal("Combo expired early")
	}

	snap := r.step(t, engine.Intents{})
	if r.w.Stats.ComboMultiplier != 1 || r.w.Stats.ConsecutiveHits != 0 {
		t.Errorf("Expected combo reset, got %+v", r.w.Stats)
	}
	if countEvents(snap, event.EventComboExpired) != 1 {
		t.Error("Expected combo expiry event")
	}
}
