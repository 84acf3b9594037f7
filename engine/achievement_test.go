package engine

import (
	"testing"

	"github.com/lixenwraith/pong-arena/core"
)

func TestTrackerKeys(t *testing.T) {
	tr := NewTracker()
	want := []string{
		"first-blood", "combo-master", "speed-demon", "power-collector",
		"hard-win", "perfect-game", "long-rally",
	}
	for i, k := range want {
		if got := tr.Get(i).Key; got != k {
			t.Errorf("Achievement %d: expected key %q, got %q", i, k, got)
		}
	}
	if _, ok := tr.Lookup("speed-demon"); !ok {
		t.Error("Expected lookup by key")
	}
}

func TestTrackerUnlocksOnce(t *testing.T) {
	tr := NewTracker()
	p := Progress{ConsecutiveHits: 5}

	fresh := tr.Evaluate(&p)
	if len(fresh) != 1 || fresh[0] != 1 {
		t.Fatalf("Expected Combo Master only, got %v", fresh)
	}
	for i := 0; i < 10; i++ {
		if again := tr.Evaluate(&p); len(again) != 0 {
			t.Fatalf("Expected no re-unlock, got %v", again)
		}
	}
	if tr.UnlockedCount() != 1 {
		t.Errorf("Expected unlocked count 1, got %d", tr.UnlockedCount())
	}

	// Condition no longer holding never re-locks
	p.ConsecutiveHits = 0
	tr.Evaluate(&p)
	if !tr.Get(1).Unlocked {
		t.Error("Expected achievement to stay unlocked")
	}
}

func TestTrackerConditions(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		idx  []int
	}{
		{"first blood top", Progress{Scores: [2]int{0, 1}}, []int{0}},
		{"speed demon", Progress{MaxBallSpeed: 20}, []int{2}},
		{"power collector", Progress{PowerUpsCollected: 10}, []int{3}},
		{"hard win", Progress{Mode: core.ModeVsAI, Difficulty: core.DifficultyHard, Scores: [2]int{5, 3}}, []int{0, 4}},
		{"pvp five", Progress{Mode: core.ModePvP, Difficulty: core.DifficultyHard, Scores: [2]int{5, 3}}, []int{0}},
		{"perfect game", Progress{Scores: [2]int{5, 0}}, []int{0, 5}},
		{"long rally", Progress{ConsecutiveHits: 20}, []int{1, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			got := tr.Evaluate(&tt.p)
			if len(got) != len(tt.idx) {
				t.Fatalf("Expected %v, got %v", tt.idx, got)
			}
			for i := range got {
				if got[i] != tt.idx[i] {
					t.Errorf("Expected %v, got %v", tt.idx, got)
				}
			}
		})
	}
}
