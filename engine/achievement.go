package engine

import (
	"github.com/gosimple/slug"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
)

// Progress is the stat view achievements are evaluated against
type Progress struct {
	Mode              core.Mode
	Difficulty        core.Difficulty
	Scores            [core.SideCount]int
	ConsecutiveHits   int
	MaxBallSpeed      float64
	PowerUpsCollected int
}

// Achievement is one fixed unlockable, never re-locked once unlocked
type Achievement struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`

	cond func(p *Progress) bool
}

// Tracker owns the achievement table and unlocked count
type Tracker struct {
	list     [constant.AchievementTotalDefined]Achievement
	unlocked int
}

func NewTracker() *Tracker {
	t := &Tracker{}
	defs := [constant.AchievementTotalDefined]struct {
		name, desc string
		cond       func(p *Progress) bool
	}{
		{"First Blood", "Score your first point", func(p *Progress) bool {
			return p.Scores[core.SideBottom] > 0 || p.Scores[core.SideTop] > 0
		}},
		{"Combo Master", "Get 5 hits in a row", func(p *Progress) bool {
			return p.ConsecutiveHits >= constant.AchievementComboHits
		}},
		{"Speed Demon", "Reach ball speed 20", func(p *Progress) bool {
			return p.MaxBallSpeed >= constant.AchievementSpeed
		}},
		{"Power Collector", "Collect 10 powerups", func(p *Progress) bool {
			return p.PowerUpsCollected >= constant.AchievementPowerUps
		}},
		{"Hard Win", "Win on Hard difficulty", func(p *Progress) bool {
			return p.Mode == core.ModeVsAI && p.Difficulty == core.DifficultyHard &&
				p.Scores[core.SideBottom] >= constant.AchievementWinScore
		}},
		{"Perfect Game", "Win without missing a ball", func(p *Progress) bool {
			return p.Scores[core.SideBottom] >= constant.AchievementWinScore && p.Scores[core.SideTop] == 0
		}},
		{"Long Rally", "Rally of 20 hits", func(p *Progress) bool {
			return p.ConsecutiveHits >= constant.AchievementRallyHits
		}},
	}
	for i, d := range defs {
		t.list[i] = Achievement{Key: slug.Make(d.name), Name: d.name, Description: d.desc, cond: d.cond}
	}
	return t
}

// Evaluate unlocks every satisfied locked achievement, returns the newly unlocked indices
// Re-evaluation after unlock is a no-op
func (t *Tracker) Evaluate(p *Progress) []int {
	var fresh []int
	for i := range t.list {
		a := &t.list[i]
		if a.Unlocked || !a.cond(p) {
			continue
		}
		a.Unlocked = true
		t.unlocked++
		fresh = append(fresh, i)
	}
	return fresh
}

func (t *Tracker) UnlockedCount() int { return t.unlocked }

func (t *Tracker) Get(i int) Achievement { return t.list[i] }

// List returns a copy of the table
func (t *Tracker) List() []Achievement {
	out := make([]Achievement, len(t.list))
	copy(out, t.list[:])
	return out
}

// Lookup finds an achievement by slug key
func (t *Tracker) Lookup(key string) (Achievement, bool) {
	for _, a := range t.list {
		if a.Key == key {
			return a, true
		}
	}
	return Achievement{}, false
}
