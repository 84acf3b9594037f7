package constant

// Paddle
const (
	PaddleHeight = 10.0
	PaddleWidth  = 160.0

	// PaddleVelocity is the base paddle speed shared by keyboard and AI movement
	PaddleVelocity = 15.0

	// PaddleSmoothing is the fraction of the target gap closed per reference tick
	PaddleSmoothing = 0.2

	// PaddleKeyBoost and PaddleKeyScale convert a held key into target travel per second
	PaddleKeyBoost = 1.5
	PaddleKeyScale = 40.0

	// BigPaddleFactor multiplies width while the big modifier is active
	BigPaddleFactor = 2.0
)

// Ball
const (
	BallRadius = 15.0

	// BallSpawnOffset is the half-range of the random horizontal respawn offset
	BallSpawnOffset = 100

	// BallLaunchAngle is the maximum launch deviation from vertical in degrees
	BallLaunchAngle = 30

	BallSpeedPvPDefault = 15.0
	BallSpeedPvPMin     = 5.0
	BallSpeedPvPMax     = 25.0
	BallSpeedMedium     = 16.0
	BallSpeedHard       = 18.0
)

// Paddle bounce
const (
	// Bottom paddle accelerates the rally
	BottomBounceLift      = 1.2
	BottomBounceHitFactor = 8.0
	BottomBounceCarry     = 0.5
	BottomBounceBoost     = 1.05
	BottomSpeedCapPvP     = 25.0
	BottomSpeedCapVsAI    = 30.0

	// Top paddle renormalises to the session ball speed
	TopBounceKick      = 1.5
	TopBounceHitFactor = 3.0
)

// Ball type effects on top paddle hit
const (
	FireSpeedIncrease = 0.5
	IceSpeedMult      = 0.5
	MagneticPull      = 0.1
)

// Combo
const (
	ComboThreshold  = 3
	ComboMultiplier = 2
	ComboDuration   = 3.0 // seconds
)

// Power-ups
const (
	PowerUpSpawnInterval = 8.0 // seconds
	PowerUpPickupRadius  = 15.0

	// Spawn region half extents around the centre
	PowerUpSpawnHalfWidth  = 400
	PowerUpSpawnHalfHeight = 250

	BigPaddleDuration   = 10.0
	SlowBallFactor      = 0.7
	ExtraPointsAward    = 2
	ExtraPointsDuration = 5.0
	SlowTimeFactor      = 0.5
	SlowTimeDuration    = 5.0
	FastPaddleMult      = 1.5
	InvisibleDuration   = 5.0

	// PaddleModifierDuration bounds FastPaddle and Ice speed changes
	PaddleModifierDuration = 10.0
)

// Trail
const (
	TrailLifeDecay = 0.1
	TrailSizeDecay = 0.95
)

// Particles
const (
	ParticleGravity   = 0.05
	ParticleLifeDecay = 0.02
	ParticleSizeDecay = 0.98
)

// Achievements
const (
	AchievementComboHits    = 5
	AchievementSpeed        = 20.0
	AchievementPowerUps     = 10
	AchievementWinScore     = 5
	AchievementRallyHits    = 20
	AchievementTotalDefined = 7
)
