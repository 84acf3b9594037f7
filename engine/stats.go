package engine

import "github.com/lixenwraith/pong-arena/core"

// Stats is the scoring and progress bookkeeping of a session
// MaxBallSpeed and PowerUpsCollected are cumulative for the World lifetime
type Stats struct {
	Scores            [core.SideCount]int `json:"scores"`
	ComboMultiplier   int                 `json:"combo_multiplier"`
	ConsecutiveHits   int                 `json:"consecutive_hits"`
	TotalHits         int                 `json:"total_hits"`
	MaxBallSpeed      float64             `json:"max_ball_speed"`
	PowerUpsCollected int                 `json:"powerups_collected"`
}

// ResetMatch clears per-match counters
func (s *Stats) ResetMatch() {
	s.Scores = [core.SideCount]int{}
	s.ComboMultiplier = 1
	s.ConsecutiveHits = 0
	s.TotalHits = 0
}

// ResetCombo drops the multiplier and the running rally
func (s *Stats) ResetCombo() {
	s.ComboMultiplier = 1
	s.ConsecutiveHits = 0
}

// Award adds points to side
func (s *Stats) Award(side core.Side, points int) {
	s.Scores[side] += points
}
