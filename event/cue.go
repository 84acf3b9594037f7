package event

import (
	"math"
	"time"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
)

// AudioCue is a tone request for the audio collaborator
type AudioCue struct {
	Sound     core.SoundType `json:"sound"`
	Frequency int            `json:"frequency"`
	Duration  time.Duration  `json:"duration"`
	Intensity float64        `json:"intensity,omitempty"`
}

type tone struct {
	freq int
	dur  time.Duration
}

// Pickup tones indexed by power-up type
var powerUpTones = [core.PowerUpTypeCount]tone{
	core.PowerUpBigPaddle:     {800, constant.CuePowerUpDuration},
	core.PowerUpSlowBall:      {600, constant.CuePowerUpDuration},
	core.PowerUpExtraPoints:   {1000, constant.CuePowerUpDuration},
	core.PowerUpSlowTime:      {700, constant.CuePowerUpDuration},
	core.PowerUpFastPaddle:    {900, constant.CuePowerUpDuration},
	core.PowerUpInvisibleBall: {500, constant.CuePowerUpDuration},
	core.PowerUpSplitBall:     {1200, constant.CuePowerUpDuration},
}

// Unlock tones indexed by achievement
var achievementTones = [constant.AchievementTotalDefined]tone{
	{800, constant.CueAchievementDefault},
	{1000, constant.CueAchievementDefault},
	{1200, constant.CueAchievementDefault},
	{700, constant.CueAchievementDefault},
	{2000, 500 * time.Millisecond},
	{1800, 400 * time.Millisecond},
	{1600, 400 * time.Millisecond},
}

// CueFor derives the audio cue of an event, false when the event is silent
func CueFor(ev GameEvent) (AudioCue, bool) {
	switch ev.Type {
	case EventWallBounce:
		return newCue(core.SoundWallBounce, constant.CueWallFrequency, constant.CueWallDuration, 1), true

	case EventPaddleHit:
		hit := math.Abs(ev.Intensity)
		freq := constant.CuePaddleBaseFrequency + int(hit*constant.CuePaddleHitFrequency)
		return newCue(core.SoundPaddleHit, freq, constant.CuePaddleDuration, hit), true

	case EventScore:
		return newCue(core.SoundScore, constant.CueScoreFrequency, constant.CueScoreDuration, 1), true

	case EventPowerUpCollected:
		p, ok := ev.Payload.(*PowerUpPayload)
		if !ok || p.Type == core.PowerUpNone || p.Type >= core.PowerUpTypeCount {
			return AudioCue{}, false
		}
		t := powerUpTones[p.Type]
		return newCue(core.SoundPowerUp, t.freq, t.dur, 1), true

	case EventAchievementUnlocked:
		t := tone{constant.CueFallbackFreq, constant.CueAchievementDefault}
		if p, ok := ev.Payload.(*AchievementPayload); ok && p.Index >= 0 && p.Index < len(achievementTones) {
			t = achievementTones[p.Index]
		}
		return newCue(core.SoundAchievement, t.freq, t.dur, 1), true
	}
	return AudioCue{}, false
}

// Cues derives cues for a batch of events in order
func Cues(events []GameEvent) []AudioCue {
	var out []AudioCue
	for _, ev := range events {
		if c, ok := CueFor(ev); ok {
			out = append(out, c)
		}
	}
	return out
}

// newCue applies the tone sanity range
func newCue(s core.SoundType, freq int, dur time.Duration, intensity float64) AudioCue {
	if freq < constant.CueMinFrequency || freq > constant.CueMaxFrequency {
		freq = constant.CueFallbackFreq
	}
	if dur <= 0 || dur > constant.CueMaxDuration {
		dur = constant.CueFallbackDuration
	}
	return AudioCue{Sound: s, Frequency: freq, Duration: dur, Intensity: intensity}
}
