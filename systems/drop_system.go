package systems

import (
	"github.com/lixenwraith/glyph-rain/components"
	"github.com/lixenwraith/glyph-rain/constants"
)

// DropSystem owns the active drop set
type DropSystem struct {
	drops []*components.Drop
	rng   components.Rand
}

// NewDropSystem creates an empty drop system drawing from rng
func NewDropSystem(rng components.Rand) *DropSystem {
	return &DropSystem{rng: rng}
}

// Seed adds the starting population, one drop per InitialDropDivisor columns
func (s *DropSystem) Seed(columns, rows int) {
	n := columns / constants.InitialDropDivisor
	for i := 0; i < n; i++ {
		s.drops = append(s.drops, components.NewDrop(s.rng, columns, rows))
	}
}

// Spawn adds at most one drop, with probability DropSpawnChance
func (s *DropSystem) Spawn(columns, rows int) bool {
	if s.rng.Float64() >= constants.DropSpawnChance {
		return false
	}
	s.drops = append(s.drops, components.NewDrop(s.rng, columns, rows))
	return true
}

// Add inserts an externally built drop
func (s *DropSystem) Add(d *components.Drop) {
	s.drops = append(s.drops, d)
}

// Update advances every drop one tick and removes the retired ones
// Retired drops are returned in set order for word detection
func (s *DropSystem) Update(bottom int) []*components.Drop {
	var retired []*components.Drop
	alive := s.drops[:0]
	for _, d := range s.drops {
		if d.Update(s.rng, bottom) {
			alive = append(alive, d)
		} else {
			retired = append(retired, d)
		}
	}
	// Clear tail references for GC
	for i := len(alive); i < len(s.drops); i++ {
		s.drops[i] = nil
	}
	s.drops = alive
	return retired
}

// Drops returns the active set
func (s *DropSystem) Drops() []*components.Drop {
	return s.drops
}

// Count returns the number of active drops
func (s *DropSystem) Count() int {
	return len(s.drops)
}
