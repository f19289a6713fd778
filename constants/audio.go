package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect, 0..1
	AudioMasterVolume = 0.5
)

// Word-Found Chime
// Two rising sine notes, each shaped by a short attack and a longer release
const (
	ChimeNote1Freq     = 880.0  // A5
	ChimeNote2Freq     = 1318.5 // E6
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 220 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 180 * time.Millisecond
)
