package engine

import "time"

// TimeProvider supplies wall-clock readings to the engine clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider returns the system clock provider
func NewMonotonicTimeProvider() MonotonicTimeProvider {
	return MonotonicTimeProvider{}
}

// Now implements TimeProvider
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// PausableClock measures engine time, which stops advancing while paused
// Only the frame loop touches it, so it carries no locking
type PausableClock struct {
	provider TimeProvider

	startTime       time.Time     // Real time at creation
	paused          bool          // Current pause state
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock starting now
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns engine time since start, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	end := pc.provider.Now()
	if pc.paused {
		// Frozen at pause point
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// RealTime returns actual wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops engine time advancement
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues engine time advancement
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including any current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
