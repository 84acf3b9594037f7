package system

import (
	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/engine"
)

// AchievementSystem re-evaluates unlock conditions once per tick
type AchievementSystem struct{}

func NewAchievementSystem() *AchievementSystem { return &AchievementSystem{} }

func (s *AchievementSystem) Name() string  { return "achievement" }
func (s *AchievementSystem) Priority() int { return constant.PriorityAchievement }

func (s *AchievementSystem) Update(w *engine.World, t engine.Tick) {
	w.CheckAchievements()
}
