package parameter

// AIProfile tunes the AI paddle controller for one difficulty
type AIProfile struct {
	Reaction     float64 // Movement speed multiplier
	Accuracy     float64 // Scale on naive linear projection
	ErrorChance  float64 // Probability of an injected lateral error per tick
	MaxError     float64 // Error half-range in world units
	SpeedMult    float64 // Extra movement multiplier
	BounceWeight float64 // Blend weight of the wall-bounce simulated position
	Adaptation   float64 // Learning rate for long rallies
}

// Difficulty presets
var (
	AIMedium = AIProfile{
		Reaction:     0.95,
		Accuracy:     0.85,
		ErrorChance:  0.3,
		MaxError:     50,
		SpeedMult:    1.2,
		BounceWeight: 0.3,
		Adaptation:   0.15,
	}

	// AIHard never injects mistakes
	AIHard = AIProfile{
		Reaction:     1.1,
		Accuracy:     0.95,
		ErrorChance:  0,
		MaxError:     0,
		SpeedMult:    1.6,
		BounceWeight: 0.6,
		Adaptation:   0.2,
	}
)

// Adaptive skill
const (
	AIRallyThreshold   = 5  // Consecutive hits before rally learning kicks in
	AIRallyAccuracy    = 0.1
	AIRallyReaction    = 0.05
	AIRallyReactionCap = 1.2

	AILifetimeThreshold   = 50 // Total hits before lifetime learning kicks in
	AILifetimeRate        = 0.005
	AILifetimeCap         = 0.3
	AILifetimeAccuracy    = 0.05
	AILifetimeReaction    = 0.02
	AILifetimeReactionCap = 1.3

	AIAccuracyCap = 1.0
)

// Prediction and movement
const (
	AIMinHorizontalSpeed = 0.1  // Below this no wall bounce simulation runs
	AIWallRestitution    = 0.98 // Horizontal speed kept per predicted reflection
	AIMaxReflections     = 64   // Safety bound on the reflection loop
	AIErrorTimeFactor    = 0.5
	AIRecenterRate       = 0.05

	// AIStepScale converts base velocity into target travel per reference tick
	AIStepScale       = 0.6
	AIFarGap          = 20.0
	AIFarBoost        = 1.5
	AIDeadZone        = 2.0
	AISnapGap         = 50.0
	AISnapTimeSeconds = 0.3
)
