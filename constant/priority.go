package constant

// System execution priorities, lower runs first within a tick
const (
	PriorityControl     = 10
	PriorityBall        = 20
	PriorityPowerUp     = 30
	PriorityCombo       = 40
	PriorityParticle    = 50
	PriorityAchievement = 60
)
