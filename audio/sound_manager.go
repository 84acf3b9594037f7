package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pong-arena/constant"
	"github.com/lixenwraith/pong-arena/event"
)

// SoundManager mixes cue tones into a single speaker stream
// Safe for concurrent use; all calls are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	played  int
	dropped int
}

func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, disabled configs never touch the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferTime)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all voices
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Speaker stays open, beep cannot re-init after Close within one process
	sm.initialized = false
}

// Play queues one cue; dropped when the voice budget is exhausted
func (sm *SoundManager) Play(cue event.AudioCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CueStreamer(cue, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	full := sm.mixer.Len() >= sm.cfg.MaxVoices
	if !full {
		sm.mixer.Add(s)
	}
	speaker.Unlock()

	if full {
		sm.dropped++
		return
	}
	sm.played++
}

// PlayAll queues a snapshot's cues in order
func (sm *SoundManager) PlayAll(cues []event.AudioCue) {
	for _, c := range cues {
		sm.Play(c)
	}
}

// Stats returns played and dropped cue counts
func (sm *SoundManager) Stats() (played, dropped int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}

// Render drains a cue into a sample buffer without a device, for previews and tests
func Render(cue event.AudioCue, cfg *AudioConfig) [][2]float64 {
	s := CueStreamer(cue, cfg)
	if s == nil {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	buf := make([][2]float64, rate.N(cue.Duration+time.Millisecond))
	n := 0
	for n < len(buf) {
		k, ok := s.Stream(buf[n:])
		n += k
		if !ok || k == 0 {
			break
		}
	}
	return buf[:n]
}
