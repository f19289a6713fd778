package render

import "context"

// Cell is one recorded MemorySurface cell
type Cell struct {
	Rune  rune
	Color uint8
	Bold  bool
}

// MemorySurface is an in-memory Surface for tests
// Keys are returned in order by PollKey and WaitKey; WaitKey never blocks
type MemorySurface struct {
	Width, Height int
	Keys          []rune
	Cells         map[[2]int]Cell

	Clears       int
	Shows        int
	Beeps        int
	Waits        int
	CursorHidden bool
	Discarded    int // Out-of-bounds writes
}

// NewMemorySurface creates an empty surface of the given size
func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{
		Width:  width,
		Height: height,
		Cells:  make(map[[2]int]Cell),
	}
}

// Size implements Canvas
func (m *MemorySurface) Size() (int, int) {
	return m.Width, m.Height
}

// SetCell implements Canvas
func (m *MemorySurface) SetCell(x, y int, ch rune, color uint8, bold bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		m.Discarded++
		return
	}
	m.Cells[[2]int{x, y}] = Cell{Rune: ch, Color: color, Bold: bold}
}

// Cell returns the cell at (x, y) and whether it was drawn
func (m *MemorySurface) Cell(x, y int) (Cell, bool) {
	c, ok := m.Cells[[2]int{x, y}]
	return c, ok
}

// Row returns the runes drawn on row y, spaces for empty cells
func (m *MemorySurface) Row(y int) string {
	buf := make([]rune, m.Width)
	for x := range buf {
		buf[x] = ' '
		if c, ok := m.Cell(x, y); ok {
			buf[x] = c.Rune
		}
	}
	return string(buf)
}

// Clear implements Surface
func (m *MemorySurface) Clear() {
	m.Clears++
	m.Cells = make(map[[2]int]Cell)
}

// Show implements Surface
func (m *MemorySurface) Show() {
	m.Shows++
}

// PollKey implements Surface
func (m *MemorySurface) PollKey() (rune, bool) {
	if len(m.Keys) == 0 {
		return 0, false
	}
	k := m.Keys[0]
	m.Keys = m.Keys[1:]
	return k, true
}

// WaitKey implements Surface without blocking
func (m *MemorySurface) WaitKey(ctx context.Context) (rune, bool) {
	m.Waits++
	if ctx.Err() != nil {
		return 0, false
	}
	return m.PollKey()
}

// HideCursor implements Surface
func (m *MemorySurface) HideCursor() {
	m.CursorHidden = true
}

// Beep implements Surface
func (m *MemorySurface) Beep() {
	m.Beeps++
}
