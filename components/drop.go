package components

import (
	"github.com/lixenwraith/glyph-rain/constants"
)

// Drop is a falling glyph with a bounded, aging trail
type Drop struct {
	Column   int     // Fixed column
	Y        float64 // Vertical position, non-decreasing
	Layer    int     // Depth layer, selects speed and gradient
	Glyph    rune    // Current glyph, recorded into the trail each tick
	Trail    Trail
	Gradient []uint8
}

// NewDrop creates a drop at a random column and layer, starting above the viewport
// Start Y is uniform in [-rows, 0)
func NewDrop(rng Rand, columns, rows int) *Drop {
	column := 0
	if columns > 0 {
		column = rng.Intn(columns)
	}
	layer := rng.Intn(constants.LayerCount)
	return &Drop{
		Column:   column,
		Y:        -rng.Float64() * float64(rows),
		Layer:    layer,
		Glyph:    RandomGlyph(rng),
		Trail:    NewTrail(constants.PaletteDepth),
		Gradient: constants.LayerGradient(layer),
	}
}

// Speed returns the per-tick vertical advance of the drop's layer
func (d *Drop) Speed() float64 {
	return constants.LayerSpeeds[d.Layer]
}

// Update advances the drop one tick and reports whether it is still alive
// bottom is the first row below the drop area
func (d *Drop) Update(rng Rand, bottom int) bool {
	d.Y += d.Speed()
	d.Trail.Push(int(d.Y), d.Glyph)

	// Matrix-style morph, affects only future trail entries
	if rng.Float64() < constants.GlyphMorphChance {
		d.Glyph = RandomGlyph(rng)
	}

	return d.Alive(bottom)
}

// Alive reports whether any part of the trail can still be on screen
func (d *Drop) Alive(bottom int) bool {
	return d.Y < float64(bottom+d.Trail.Cap())
}

// ColorFor returns the gradient color for a trail entry age
func (d *Drop) ColorFor(age int) uint8 {
	idx := age
	if idx > len(d.Gradient)-1 {
		idx = len(d.Gradient) - 1
	}
	return d.Gradient[idx]
}

// Probe returns the trail text used for word detection, newest glyph first
func (d *Drop) Probe() string {
	return d.Trail.Glyphs()
}

// RandomGlyph picks a uniformly random alphabet character
func RandomGlyph(rng Rand) rune {
	return constants.HebrewAlphabet[rng.Intn(len(constants.HebrewAlphabet))]
}
