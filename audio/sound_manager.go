package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays the word-found chime through the system speaker
// When audio is unavailable or muted, Alert falls back to the supplied bell
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	fallback    func()
	initialized bool
	played      int
}

// NewSoundManager creates a sound manager; fallback may be nil
func NewSoundManager(cfg *AudioConfig, fallback func()) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:      cfg,
		mixer:    &beep.Mixer{},
		fallback: fallback,
	}
}

// Initialize sets up the speaker; failure leaves the manager in fallback mode
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.cfg.Muted {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Available reports whether the speaker is live
func (sm *SoundManager) Available() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayWordFound queues the chime; returns false when nothing was played
func (sm *SoundManager) PlayWordFound() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	chime, err := CreateChime(sm.cfg)
	if err != nil {
		log.Printf("Chime generation failed: %v", err)
		return false
	}

	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
	sm.played++
	return true
}

// Alert plays the chime or rings the fallback bell
func (sm *SoundManager) Alert() {
	if sm.PlayWordFound() {
		return
	}
	if sm.fallback != nil {
		sm.fallback()
	}
}
