package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glyph-rain/constants"
)

// TestPaletteCoversGradients verifies every gradient index maps to a real color
func TestPaletteCoversGradients(t *testing.T) {
	for layer := 0; layer < constants.LayerCount; layer++ {
		for _, idx := range constants.LayerGradient(layer) {
			if PaletteColor(idx) == tcell.ColorReset {
				t.Errorf("layer %d: palette index %d has no color", layer, idx)
			}
		}
	}
}

func TestPaletteColorUnknownIndex(t *testing.T) {
	if got := PaletteColor(200); got != tcell.ColorReset {
		t.Errorf("Expected ColorReset for unknown index, got %v", got)
	}
}

func TestStyleForBold(t *testing.T) {
	style := StyleFor(ColorCyan, true)
	fg, _, attrs := style.Decompose()
	if fg != RgbRainCyan {
		t.Errorf("Expected cyan foreground, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}

	_, _, attrs = StyleFor(ColorCyan, false).Decompose()
	if attrs&tcell.AttrBold != 0 {
		t.Error("Expected no bold attribute")
	}
}
