package constant

import "time"

// Audio cue tones
const (
	CueWallFrequency = 300
	CueWallDuration  = 50 * time.Millisecond

	// Paddle hit pitch rises with impact offset
	CuePaddleBaseFrequency = 500
	CuePaddleHitFrequency  = 200
	CuePaddleDuration      = 100 * time.Millisecond

	CueScoreFrequency = 200
	CueScoreDuration  = 200 * time.Millisecond

	CuePowerUpDuration    = 200 * time.Millisecond
	CueAchievementDefault = 300 * time.Millisecond

	// Valid tone range; out-of-range requests fall back to defaults
	CueMinFrequency     = 37
	CueMaxFrequency     = 32767
	CueFallbackFreq     = 1000
	CueMaxDuration      = 5 * time.Second
	CueFallbackDuration = 100 * time.Millisecond
)

// Audio engine
const (
	AudioSampleRate = 48000
	AudioBufferTime = 100 * time.Millisecond
	AudioAttack     = 5 * time.Millisecond
	AudioRelease    = 20 * time.Millisecond

	// AudioMaxVoices bounds concurrently mixed tones, extra cues are dropped
	AudioMaxVoices = 8
)
