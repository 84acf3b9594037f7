// Package audio turns simulation audio cues into synthesized tones
package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	MaxVoices     int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns enabled playback at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		MaxVoices:    constant.AudioMaxVoices,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundWallBounce:  0.6,
			core.SoundPaddleHit:   0.8,
			core.SoundScore:       1.0,
			core.SoundPowerUp:     0.7,
			core.SoundAchievement: 0.9,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("PONG_ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("PONG_ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-effect volumes keyed by sound name, e.g. {"wall":0.3,"score":1}
	if effectVols := os.Getenv("PONG_ARENA_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("PONG_ARENA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if voices := os.Getenv("PONG_ARENA_MAX_VOICES"); voices != "" {
		if val, err := strconv.Atoi(voices); err == nil && val > 0 {
			cfg.MaxVoices = val
		}
	}

	return cfg
}
