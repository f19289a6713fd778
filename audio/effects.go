package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/glyph-rain/constants"
)

// envelope applies attack/release shaping to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a single enveloped sine tone of fixed length
func note(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.1fHz: %w", freq, err)
	}
	return NewEnvelope(beep.Take(rate.N(duration), sine), duration, attack, release, rate), nil
}

// CreateChime generates the two-note rising chime played when a word is found
func CreateChime(cfg *AudioConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	n1, err := note(constants.ChimeNote1Freq, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)
	if err != nil {
		return nil, err
	}
	n2, err := note(constants.ChimeNote2Freq, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)
	if err != nil {
		return nil, err
	}

	return newVolume(beep.Seq(n1, n2), cfg.MasterVolume), nil
}
