package constants

import "time"

// Spawn & Morph Probabilities (per tick)
const (
	// DropSpawnChance is the probability that one new drop enters on a tick
	DropSpawnChance = 0.4

	// GlyphMorphChance is the probability that a drop swaps its glyph on a tick
	// Only trail entries recorded after the swap carry the new glyph
	GlyphMorphChance = 0.02

	// InitialDropDivisor sets the starting population: one drop per this many columns
	InitialDropDivisor = 8
)

// Cluster Constants
const (
	// ClusterLifespan is the number of ticks a cluster stays alive
	ClusterLifespan = 40

	// ClusterRadiusStep is the radius growth per tick
	ClusterRadiusStep = 0.3

	// ClusterAngleStep is the rotation per tick in radians
	ClusterAngleStep = 0.1

	// ClusterScaleDivisor normalizes radius to viewport size (cols/100, rows/100)
	ClusterScaleDivisor = 100.0

	// ClusterColorDivisor slows cluster color progression relative to trails
	ClusterColorDivisor = 3
)

// Pacing Constants
const (
	// InitialDelay is the per-tick pacing delay at session start
	InitialDelay = 50 * time.Millisecond

	// DelayStep is the change applied by one speed-up or slow-down command
	DelayStep = 10 * time.Millisecond

	// MinDelay is the speed-up floor; slowing down has no ceiling
	MinDelay = 10 * time.Millisecond
)

// Dictionary & Session Constants
const (
	// MinWordLen is the shortest dictionary entry kept, in characters
	MinWordLen = 10

	// MaxWordLen is the longest dictionary entry kept, in characters
	MaxWordLen = 13

	// TargetCount is the number of distinct found words that ends the session
	TargetCount = 10

	// DefaultDictFile is the dictionary path used when none is configured
	DefaultDictFile = "hebrew_words.txt"

	// DefaultJournalFile is the found-word log path used when none is configured
	DefaultJournalFile = "glyph-rain.log"
)
