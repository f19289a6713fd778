package render

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glyph-rain/constants"
)

// eventBufferSize bounds the queue between the poll goroutine and the frame loop
const eventBufferSize = 64

// TerminalRenderer implements Surface on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	events chan tcell.Event
}

// NewTerminalRenderer wraps an initialized screen and starts event polling
// tcell only offers blocking polls, so a goroutine feeds a buffered queue that PollKey drains
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		events: make(chan tcell.Event, eventBufferSize),
	}
	go r.pump()
	return r
}

// pump forwards screen events until the screen is finalized
func (r *TerminalRenderer) pump() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			close(r.events)
			return
		}
		r.events <- ev
	}
}

// Size returns viewport width and height in cells
func (r *TerminalRenderer) Size() (int, int) {
	return r.screen.Size()
}

// SetCell draws one styled glyph, ignoring out-of-bounds coordinates
func (r *TerminalRenderer) SetCell(x, y int, ch rune, color uint8, bold bool) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, StyleFor(color, bold))
}

// Clear erases the back buffer
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Show presents the frame
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// HideCursor hides the text cursor
func (r *TerminalRenderer) HideCursor() {
	r.screen.HideCursor()
}

// Beep rings the terminal bell
func (r *TerminalRenderer) Beep() {
	_ = r.screen.Beep()
}

// PollKey returns the next pending key, or false when none is queued
// Non-key events are handled and skipped
func (r *TerminalRenderer) PollKey() (rune, bool) {
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return 0, false
			}
			if key, isKey := r.handle(ev); isKey {
				return key, true
			}
		default:
			return 0, false
		}
	}
}

// WaitKey blocks until a key event arrives or ctx is done
// Returns the quit key if the screen closes first
func (r *TerminalRenderer) WaitKey(ctx context.Context) (rune, bool) {
	for {
		select {
		case <-ctx.Done():
			return 0, false
		case ev, ok := <-r.events:
			if !ok {
				return constants.KeyQuit, true
			}
			if key, isKey := r.handle(ev); isKey {
				return key, true
			}
		}
	}
}

// handle translates key events and reacts to resizes
func (r *TerminalRenderer) handle(ev tcell.Event) (rune, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return 0, false
}

// translateKey maps a key event onto a command rune
// Escape and Ctrl-C quit since raw mode swallows the interrupt signal
func translateKey(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return constants.KeyQuit
	default:
		return 0
	}
}

// Fini restores the terminal
func (r *TerminalRenderer) Fini() {
	r.screen.Fini()
}
