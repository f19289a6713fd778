package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette indices
const (
	ColorDefault uint8 = iota
	ColorGreen
	ColorGreenDeep
	ColorYellow
	ColorCyan
	ColorWhite
)

// RGB color definitions for the rain palette, one per palette index
var (
	RgbRainGreen     = tcell.NewRGBColor(0, 255, 70)    // Bright phosphor green
	RgbRainGreenDeep = tcell.NewRGBColor(0, 175, 55)    // Deep green
	RgbRainYellow    = tcell.NewRGBColor(230, 230, 90)  // Pale yellow bloom
	RgbRainCyan      = tcell.NewRGBColor(0, 215, 215)   // Cyan
	RgbRainWhite     = tcell.NewRGBColor(235, 255, 235) // Green-tinted white
	RgbBackground    = tcell.ColorReset                 // Terminal default background
)

// Text roles mapped onto palette indices
const (
	ColorHUD     = ColorWhite
	ColorMessage = ColorYellow
	ColorWord    = ColorCyan
)

var palette = [...]tcell.Color{
	ColorDefault:   tcell.ColorReset,
	ColorGreen:     RgbRainGreen,
	ColorGreenDeep: RgbRainGreenDeep,
	ColorYellow:    RgbRainYellow,
	ColorCyan:      RgbRainCyan,
	ColorWhite:     RgbRainWhite,
}

// PaletteColor maps a palette index to a terminal color
// Unknown indices fall back to the terminal default
func PaletteColor(idx uint8) tcell.Color {
	if int(idx) >= len(palette) {
		return tcell.ColorReset
	}
	return palette[idx]
}

// StyleFor returns the cell style for a palette index and emphasis flag
func StyleFor(idx uint8, bold bool) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(PaletteColor(idx)).Bold(bold)
}
