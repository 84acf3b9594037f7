package event

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStart signals a (re)initialised session
	// Trigger: World.Start | Payload: *SessionPayload
	EventSessionStart EventType = iota

	// EventWallBounce signals a side wall reflection
	// Trigger: BallSystem | Consumer: audio, particles | Payload: nil
	EventWallBounce

	// EventPaddleHit signals a top paddle contact, Intensity carries the absolute hit offset
	// Trigger: BallSystem | Consumer: audio, particles | Payload: *HitPayload
	EventPaddleHit

	// EventScore signals a ball leaving the field
	// Trigger: BallSystem | Consumer: audio, server | Payload: *ScorePayload
	EventScore

	// EventPowerUpSpawned signals a power-up slot activation
	// Trigger: PowerUpSystem | Payload: *PowerUpPayload
	EventPowerUpSpawned

	// EventPowerUpCollected signals a pickup and its applied effect
	// Trigger: PowerUpSystem.Collide | Consumer: audio | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPowerUpExpired signals a timed effect reverting to baseline
	// Trigger: PowerUpSystem | Payload: *PowerUpPayload
	EventPowerUpExpired

	// EventBallSplit signals a ball added by the split effect
	// Trigger: PowerUpSystem.Collide | Payload: nil
	EventBallSplit

	// EventComboStart signals the combo multiplier engaging
	// Trigger: BallSystem | Payload: nil
	EventComboStart

	// EventComboExpired signals the combo timer running out
	// Trigger: ComboSystem | Payload: nil
	EventComboExpired

	// EventAchievementUnlocked signals a locked to unlocked transition
	// Trigger: Tracker.Evaluate | Consumer: audio | Payload: *AchievementPayload
	EventAchievementUnlocked

	EventTypeCount
)

var eventNames = [EventTypeCount]string{
	"session_start",
	"wall_bounce",
	"paddle_hit",
	"score",
	"powerup_spawned",
	"powerup_collected",
	"powerup_expired",
	"ball_split",
	"combo_start",
	"combo_expired",
	"achievement_unlocked",
}

func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
