package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/glyph-rain/components"
	"github.com/lixenwraith/glyph-rain/constants"
	"github.com/mattn/go-runewidth"
)

// DrawDrop draws every trail entry at its recorded row with its age color, bold
func DrawDrop(c Canvas, d *components.Drop) {
	for age := 0; age < d.Trail.Len(); age++ {
		e := d.Trail.At(age)
		c.SetCell(d.Column, e.Row, e.Glyph, d.ColorFor(e.Age), true)
	}
}

// DrawCluster draws cluster letters scaled to the viewport
// Letters that spiral off-screen are discarded by the canvas
func DrawCluster(c Canvas, cl *components.Cluster) {
	w, h := c.Size()
	color := cl.Color()
	for _, l := range cl.Letters {
		x, y := cl.Position(l, w, h)
		c.SetCell(x, y, l.Char, color, true)
	}
}

// DrawSpinner draws the spinner glyph near the right edge of the top row
func DrawSpinner(c Canvas, glyph rune) {
	w, _ := c.Size()
	c.SetCell(w-constants.SpinnerInset, 0, glyph, ColorHUD, true)
}

// DrawText draws text starting at (x, y), advancing by display width
// Returns the x after the last drawn cell; text past the right edge is dropped
func DrawText(c Canvas, x, y int, text string, color uint8, bold bool) int {
	w, _ := c.Size()
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		c.SetCell(x, y, r, color, bold)
		x += rw
	}
	return x
}

// DrawCentered draws text horizontally centered on row y
func DrawCentered(c Canvas, y int, text string, color uint8, bold bool) {
	w, _ := c.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	DrawText(c, x, y, text, color, bold)
}

// FormatHUD builds the status line text
func FormatHUD(elapsed time.Duration, wps float64, drops, clusters int) string {
	return fmt.Sprintf("Time:%ds WPS:%.2f Drops:%d Clusters:%d", int(elapsed.Seconds()), wps, drops, clusters)
}

// DrawHUD draws the status line on the last viewport row
func DrawHUD(c Canvas, text string) {
	_, h := c.Size()
	if h < 1 {
		return
	}
	DrawText(c, 0, h-1, text, ColorHUD, true)
}

// DrawSummary draws the completion message and the found words below it
// rows is the drop area height; the message sits on its middle row
func DrawSummary(c Canvas, rows int, message string, words []string) {
	mid := rows / 2
	DrawCentered(c, mid, message, ColorMessage, true)
	for i, word := range words {
		DrawCentered(c, mid+constants.SummaryWordOffset+i+1, word, ColorWord, true)
	}
}
