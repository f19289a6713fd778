package audio

import (
	"time"

	"github.com/lixenwraith/glyph-rain/constants"
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	SampleRate     int
	BufferDuration time.Duration
	MasterVolume   float64
	Muted          bool
}

// DefaultAudioConfig returns the stock output settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:     constants.AudioSampleRate,
		BufferDuration: constants.AudioBufferDuration,
		MasterVolume:   constants.AudioMasterVolume,
	}
}
