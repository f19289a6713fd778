package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/glyph-rain/components"
	"github.com/lixenwraith/glyph-rain/journal"
	"github.com/lixenwraith/glyph-rain/render"
)

// RecordingSink is an in-memory journal sink for tests
type RecordingSink struct {
	Entries []journal.Entry
	Err     error
}

// Record implements journal.Sink
// Like the file and SQLite sinks it rejects a cancelled context
func (r *RecordingSink) Record(ctx context.Context, e journal.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Entries = append(r.Entries, e)
	return r.Err
}

// Close implements journal.Sink
func (r *RecordingSink) Close() error { return nil }

// MockTimeProvider is a manually advanced TimeProvider
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider creates a mock clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now implements TimeProvider
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves the mock clock forward
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Sleep advances the mock instead of blocking, usable with WithSleeper
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.Advance(d)
}

// TestHarness bundles a scheduler with in-memory collaborators
type TestHarness struct {
	Scheduler *Scheduler
	Surface   *render.MemorySurface
	Journal   *RecordingSink
	Clock     *MockTimeProvider
	Sleeps    []time.Duration
	Alerts    int
}

// NewTestHarness creates a scheduler on a width x height memory surface
// Sleeping advances the mock clock instead of blocking
func NewTestHarness(cfg Config, width, height int, rng components.Rand) *TestHarness {
	h := &TestHarness{
		Surface: render.NewMemorySurface(width, height),
		Journal: &RecordingSink{},
		Clock:   NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	h.Scheduler = NewScheduler(cfg, h.Surface,
		WithRand(rng),
		WithJournal(h.Journal),
		WithTimeProvider(h.Clock),
		WithAlerter(AlertFunc(func() { h.Alerts++ })),
		WithSleeper(func(d time.Duration) {
			h.Sleeps = append(h.Sleeps, d)
			h.Clock.Advance(d)
		}),
	)
	return h
}
