package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundWallBounce  SoundType = iota // Side wall reflection
	SoundPaddleHit                    // Top paddle hit, pitch follows offset
	SoundScore                        // Ball left the field
	SoundPowerUp                      // Power-up collected
	SoundAchievement                  // Achievement unlocked
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"wall", "paddle", "score", "powerup", "achievement"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
