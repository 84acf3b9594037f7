package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/pong-arena/core"
	"github.com/lixenwraith/pong-arena/event"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	if !cfg.Enabled {
		t.Error("Expected default config to be enabled")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected master volume 0.5, got %f", cfg.MasterVolume)
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s", st)
		}
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("PONG_ARENA_AUDIO_ENABLED", "false")
	t.Setenv("PONG_ARENA_MASTER_VOLUME", "150")
	t.Setenv("PONG_ARENA_SFX_VOLUMES", `{"wall":0.1,"achievement":0.2}`)
	t.Setenv("PONG_ARENA_SAMPLE_RATE", "22050")
	t.Setenv("PONG_ARENA_MAX_VOICES", "-3")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundWallBounce] != 0.1 || cfg.EffectVolumes[core.SoundAchievement] != 0.2 {
		t.Errorf("Unexpected effect volumes %v", cfg.EffectVolumes)
	}
	if cfg.EffectVolumes[core.SoundScore] != 1.0 {
		t.Error("Expected untouched volumes to keep defaults")
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected 22050, got %d", cfg.SampleRate)
	}
	if cfg.MaxVoices != DefaultAudioConfig().MaxVoices {
		t.Errorf("Expected invalid voice count ignored, got %d", cfg.MaxVoices)
	}
}

func TestOscillatorFinite(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 80)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("Square sample %d is %f", i, v)
		}
	}
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got %d (%v)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	// Zero frequency square stays at +1, so the envelope is visible directly
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[91][0] {
		t.Error("Expected release to fade")
	}
}

func TestRenderCues(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000

	cues := []event.AudioCue{
		{Sound: core.SoundWallBounce, Frequency: 300, Duration: 50 * time.Millisecond},
		{Sound: core.SoundPaddleHit, Frequency: 700, Duration: 100 * time.Millisecond, Intensity: 1},
		{Sound: core.SoundScore, Frequency: 200, Duration: 200 * time.Millisecond},
		{Sound: core.SoundPowerUp, Frequency: 800, Duration: 200 * time.Millisecond},
		{Sound: core.SoundAchievement, Frequency: 1000, Duration: 300 * time.Millisecond},
	}
	for _, c := range cues {
		buf := Render(c, cfg)
		want := beep.SampleRate(cfg.SampleRate).N(c.Duration)
		if len(buf) < want {
			t.Errorf("%s: expected at least %d samples, got %d", c.Sound, want, len(buf))
		}
		var peak float64
		for _, s := range buf {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if peak == 0 {
			t.Errorf("%s: expected audible output", c.Sound)
		}
	}

	if Render(event.AudioCue{Sound: core.SoundTypeCount}, cfg) != nil {
		t.Error("Expected unknown sound to render nothing")
	}
}

func TestRenderMutedEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	cfg.EffectVolumes[core.SoundWallBounce] = 0

	for _, s := range Render(event.AudioCue{Sound: core.SoundWallBounce, Frequency: 300, Duration: 50 * time.Millisecond}, cfg) {
		if s[0] != 0 {
			t.Fatal("Expected muted effect to be silent")
		}
	}
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.Play(event.AudioCue{Sound: core.SoundScore, Frequency: 200, Duration: time.Millisecond})
	sm.PlayAll([]event.AudioCue{{Sound: core.SoundWallBounce}})
	sm.Cleanup()

	if played, dropped := sm.Stats(); played != 0 || dropped != 0 {
		t.Errorf("Expected no activity, got %d played %d dropped", played, dropped)
	}
}

func TestSoundManagerDisabledSkipsDevice(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected disabled init to succeed, got %v", err)
	}
	sm.Play(event.AudioCue{Sound: core.SoundScore, Frequency: 200, Duration: time.Millisecond})
	if played, _ := sm.Stats(); played != 0 {
		t.Error("Expected disabled manager to stay silent")
	}
}

func TestAudioServiceMutedInit(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Init(true); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !svc.Muted() {
		t.Error("Expected muted service")
	}
	// Disabled config never opens the device
	if err := svc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	svc.PlayAll([]event.AudioCue{{Sound: core.SoundScore, Frequency: 200, Duration: time.Millisecond}})
	if played, _ := svc.Manager().Stats(); played != 0 {
		t.Error("Expected muted service to stay silent")
	}

	if svc.ToggleMute() {
		t.Error("Expected toggle to unmute")
	}
	if !svc.ToggleMute() {
		t.Error("Expected toggle to mute again")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
