package systems

import (
	"testing"

	"github.com/lixenwraith/glyph-rain/components"
	"github.com/lixenwraith/glyph-rain/constants"
)

func TestDropSystemSeed(t *testing.T) {
	s := NewDropSystem(components.NewScriptedRand())
	s.Seed(80, 24)
	if s.Count() != 10 {
		t.Errorf("Expected 80/8 = 10 drops, got %d", s.Count())
	}
}

func TestDropSystemSpawnProbability(t *testing.T) {
	rng := components.NewScriptedRand()
	rng.Floats = []float64{0.39, 0.0, 0.4, 0.5}
	s := NewDropSystem(rng)

	// 0.39 spawns (second float is the new drop's start Y)
	if !s.Spawn(80, 24) {
		t.Error("Expected spawn at 0.39")
	}
	// 0.4 is not below the chance
	if s.Spawn(80, 24) {
		t.Error("Expected no spawn at 0.4")
	}
	if s.Spawn(80, 24) {
		t.Error("Expected no spawn at 0.5")
	}
	if s.Count() != 1 {
		t.Errorf("Expected 1 drop, got %d", s.Count())
	}
}

func TestDropSystemRetiresDrops(t *testing.T) {
	s := NewDropSystem(components.NewScriptedRand())
	bottom := 10

	near := &components.Drop{Y: float64(bottom + constants.PaletteDepth - 1), Layer: 3, Glyph: 'א',
		Trail: components.NewTrail(constants.PaletteDepth), Gradient: constants.LayerGradient(3)}
	far := &components.Drop{Y: 0, Layer: 0, Glyph: 'ב',
		Trail: components.NewTrail(constants.PaletteDepth), Gradient: constants.LayerGradient(0)}
	s.Add(near)
	s.Add(far)

	retired := s.Update(bottom)
	if len(retired) != 1 || retired[0] != near {
		t.Fatalf("Expected only the bottom drop retired, got %d", len(retired))
	}
	if s.Count() != 1 || s.Drops()[0] != far {
		t.Errorf("Expected far drop to remain active")
	}
}
