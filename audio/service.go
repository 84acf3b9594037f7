package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/pong-arena/event"
)

// AudioService wraps SoundManager as a process service
// Degrades to silence when no output device is available
type AudioService struct {
	manager  *SoundManager
	cfg      *AudioConfig
	disabled atomic.Bool
	muted    atomic.Bool
}

func NewService(cfg *AudioConfig) *AudioService {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &AudioService{cfg: cfg}
}

func (s *AudioService) Name() string           { return "audio" }
func (s *AudioService) Dependencies() []string { return nil }

// Init implements Service
// args[0]: bool - start muted
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			s.cfg.Enabled = false
		}
	}
	s.manager = NewSoundManager(s.cfg)
	s.muted.Store(!s.cfg.Enabled)
	return nil
}

// Start opens the speaker; failure disables audio without an error
func (s *AudioService) Start() error {
	if s.manager == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
		s.disabled.Store(true)
	}
	return nil
}

func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// ToggleMute flips the mute state and returns the new state
func (s *AudioService) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *AudioService) Muted() bool { return s.muted.Load() }

// PlayAll plays a snapshot's cues unless muted or disabled
func (s *AudioService) PlayAll(cues []event.AudioCue) {
	if len(cues) == 0 || s.muted.Load() || s.disabled.Load() || s.manager == nil {
		return
	}
	s.manager.PlayAll(cues)
}

// Manager exposes the underlying manager, nil before Init
func (s *AudioService) Manager() *SoundManager { return s.manager }
