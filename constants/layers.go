package constants

// Depth Layer Constants
const (
	// LayerCount is the number of parallax depth layers
	LayerCount = 4

	// PaletteDepth is the number of brightness stages in a gradient
	// Also the trail capacity: a trail never holds more entries than stages
	PaletteDepth = 5
)

// LayerSpeeds are the per-tick vertical advances for each layer, back to front
var LayerSpeeds = [LayerCount]float64{0.4, 0.8, 1.2, 1.6}

// BasePalette lists the palette color indices from brightest to dimmest
// Index 0 is reserved for the terminal default
var BasePalette = [PaletteDepth]uint8{1, 2, 3, 4, 5}

// LayerGradient returns the gradient for a layer: BasePalette rotated left by layer
func LayerGradient(layer int) []uint8 {
	g := make([]uint8, PaletteDepth)
	for i := range g {
		g[i] = BasePalette[(i+layer)%PaletteDepth]
	}
	return g
}
