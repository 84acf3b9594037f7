package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/event"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: total - att - rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.attackSamples + e.sustainSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, constant.AudioAttack, constant.AudioRelease, rate)
}

// CueStreamer renders a cue as a finite streamer, nil for unknown sounds
func CueStreamer(cue event.AudioCue, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := float64(cue.Frequency)
	d := cue.Duration

	var s beep.Streamer
	switch cue.Sound {
	case core.SoundWallBounce:
		s = shaped(freq, d, WaveSquare, rate)

	case core.SoundPaddleHit:
		// Body plus a quieter octave, louder on edge hits
		s = beep.Mix(
			newVolume(shaped(freq, d, WaveSine, rate), 0.6+0.4*cue.Intensity),
			newVolume(shaped(freq*2, d, WaveSine, rate), 0.25),
		)

	case core.SoundScore:
		s = beep.Mix(
			newVolume(shaped(freq, d, WaveSaw, rate), 0.8),
			newVolume(shaped(0, d, WaveNoise, rate), 0.15),
		)

	case core.SoundPowerUp:
		// SineTone rejects frequencies above Nyquist
		if tone, err := generators.SineTone(rate, freq); err == nil {
			s = NewEnvelope(beep.Take(rate.N(d), tone), d, constant.AudioAttack, constant.AudioRelease, rate)
		} else {
			s = shaped(freq, d, WaveSine, rate)
		}

	case core.SoundAchievement:
		// Rising fifth
		half := d / 2
		s = beep.Seq(shaped(freq, half, WaveSquare, rate), shaped(freq*1.5, d-half, WaveSquare, rate))

	default:
		return nil
	}

	return newVolume(s, cfg.EffectVolumes[cue.Sound]*cfg.MasterVolume)
}
