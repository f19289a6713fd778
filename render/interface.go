package render

import "context"

// Canvas is the drawing surface used by entity draw helpers
// SetCell must silently ignore coordinates outside the viewport
type Canvas interface {
	Size() (width, height int)
	SetCell(x, y int, ch rune, color uint8, bold bool)
}

// Surface is the full host display contract required by the engine
type Surface interface {
	Canvas

	// Clear erases the back buffer
	Clear()

	// Show presents the completed frame
	Show()

	// PollKey returns at most one pending key without blocking
	PollKey() (rune, bool)

	// WaitKey blocks until a key is pressed or ctx is done
	// ok is false when no key was read
	WaitKey(ctx context.Context) (key rune, ok bool)

	HideCursor()

	// Beep rings the terminal bell
	Beep()
}
