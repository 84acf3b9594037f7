package system

import (
	"testing"

	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/engine"
	"github.com/lixenwraith/pong-arena/event"
)

func TestAchievementSystemUnlocksOnce(t *testing.T) {
	r := newRig(core.ModePvP, core.DifficultyMedium, keyControls)
	r.place(0, 0, 0, 0, 1)
	r.w.Stats.Scores[core.SideTop] = 1

	snap := r.step(t, engine.Intents{})
	if n := countEvents(snap, event.EventAchievementUnlocked); n != 1 {
		t.Fatalf("Expected 1 unlock event, got %d", n)
	}
	if snap.AchievementsUnlocked != 1 {
		t.Errorf("Expected 1 unlocked, got %d", snap.AchievementsUnlocked)
	}
	if a, ok := r.w.Achievements.Lookup("first-blood"); !ok || !a.Unlocked {
		t.Errorf("Expected first-blood unlocked, got %+v (%v)", a, ok)
	}

	snap = r.step(t, engine.Intents{})
	if n := countEvents(snap, event.EventAchievementUnlocked); n != 0 {
		t.Errorf("Expected no repeat unlock, got %d", n)
	}
}
