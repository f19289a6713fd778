package engine

import (
	"time"

	"github.com/lixenwraith/glyph-rain/constants"
)

// Session holds session-level state owned by the scheduler
type Session struct {
	found    []string
	foundSet map[string]struct{}
	target   int

	paused bool
	delay  time.Duration

	frame uint64
	spin  int

	clock *PausableClock
}

// NewSession creates a running, unpaused session
func NewSession(target int, delay time.Duration, clock *PausableClock) *Session {
	return &Session{
		foundSet: make(map[string]struct{}),
		target:   target,
		delay:    delay,
		clock:    clock,
	}
}

// Claim adds word to the found set, returning false if it was already present
func (s *Session) Claim(word string) bool {
	if _, ok := s.foundSet[word]; ok {
		return false
	}
	s.foundSet[word] = struct{}{}
	s.found = append(s.found, word)
	return true
}

// Claimed reports whether word is in the found set
func (s *Session) Claimed(word string) bool {
	_, ok := s.foundSet[word]
	return ok
}

// Found returns found words in discovery order
func (s *Session) Found() []string {
	out := make([]string, len(s.found))
	copy(out, s.found)
	return out
}

// FoundCount returns the size of the found set
func (s *Session) FoundCount() int {
	return len(s.found)
}

// Done reports whether the found set reached the target
func (s *Session) Done() bool {
	return len(s.found) >= s.target
}

// TogglePause flips the pause flag and freezes or resumes engine time
func (s *Session) TogglePause() {
	s.paused = !s.paused
	if s.paused {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
}

// Paused returns the pause flag
func (s *Session) Paused() bool {
	return s.paused
}

// SpeedUp shortens the pacing delay by one step, floored at MinDelay
func (s *Session) SpeedUp() {
	s.delay -= constants.DelayStep
	if s.delay < constants.MinDelay {
		s.delay = constants.MinDelay
	}
}

// SlowDown lengthens the pacing delay by one step, unbounded
func (s *Session) SlowDown() {
	s.delay += constants.DelayStep
}

// Delay returns the current pacing delay
func (s *Session) Delay() time.Duration {
	return s.delay
}

// Elapsed returns engine time excluding pauses
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// WordsPerSecond returns found words per engine second
func (s *Session) WordsPerSecond() float64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(len(s.found)) / secs
}

// NextFrame increments the frame counter and returns it
func (s *Session) NextFrame() uint64 {
	s.frame++
	return s.frame
}

// Frame returns the frame counter
func (s *Session) Frame() uint64 {
	return s.frame
}

// SpinnerGlyph advances the spinner every SpinnerSpeed frames and returns the current glyph
func (s *Session) SpinnerGlyph() rune {
	if s.frame%constants.SpinnerSpeed == 0 {
		s.spin = (s.spin + 1) % len(constants.SpinnerFrames)
	}
	return constants.SpinnerFrames[s.spin]
}
