package components

// TrailEntry is one recorded glyph of a drop's trail
// Age is derived from ring position: 0 is the newest entry
type TrailEntry struct {
	Row   int
	Glyph rune
	Age   int
}

type trailCell struct {
	row   int
	glyph rune
}

// Trail is a fixed-capacity ring of recent glyph positions, newest first
// Exactly one entry is pushed per tick, so an entry's age equals its distance from the head
type Trail struct {
	cells []trailCell
	head  int // index of the newest entry
	count int
}

// NewTrail creates a trail holding at most capacity entries
func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{
		cells: make([]trailCell, capacity),
		head:  capacity - 1,
	}
}

// Push records a new age-0 entry, aging all others by one
// When full, the entry that would reach age == capacity is overwritten
func (t *Trail) Push(row int, glyph rune) {
	t.head = (t.head + 1) % len(t.cells)
	t.cells[t.head] = trailCell{row: row, glyph: glyph}
	if t.count < len(t.cells) {
		t.count++
	}
}

// Len returns the number of live entries
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the trail capacity
func (t *Trail) Cap() int {
	return len(t.cells)
}

// At returns the entry with the given age, 0 <= age < Len()
func (t *Trail) At(age int) TrailEntry {
	n := len(t.cells)
	c := t.cells[(t.head-age%n+n)%n]
	return TrailEntry{Row: c.row, Glyph: c.glyph, Age: age}
}

// Glyphs concatenates the trail glyphs from newest to oldest
func (t *Trail) Glyphs() string {
	buf := make([]rune, t.count)
	for i := 0; i < t.count; i++ {
		buf[i] = t.At(i).Glyph
	}
	return string(buf)
}
