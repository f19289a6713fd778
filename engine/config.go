package engine

import (
	"time"

	"github.com/lixenwraith/glyph-rain/constants"
)

// Config is the engine configuration, built once at startup and passed to the scheduler
type Config struct {
	// Words is the filtered dictionary; order defines match precedence
	Words []string

	// TargetCount is the number of distinct found words that ends the session
	TargetCount int

	// InitialDelay is the starting per-tick pacing delay
	InitialDelay time.Duration

	// Lifespan is the cluster lifespan in ticks
	Lifespan int

	// PaceWhilePaused applies the pacing delay on paused ticks
	// When false, paused ticks poll input without delay
	PaceWhilePaused bool

	// InitialDrops seeds one drop per InitialDropDivisor columns before the first tick
	InitialDrops bool
}

// DefaultConfig returns the stock configuration for a word list
func DefaultConfig(words []string) Config {
	return Config{
		Words:           words,
		TargetCount:     constants.TargetCount,
		InitialDelay:    constants.InitialDelay,
		Lifespan:        constants.ClusterLifespan,
		PaceWhilePaused: true,
		InitialDrops:    true,
	}
}
