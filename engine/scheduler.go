package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/glyph-rain/components"
	"github.com/lixenwraith/glyph-rain/constants"
	"github.com/lixenwraith/glyph-rain/journal"
	"github.com/lixenwraith/glyph-rain/render"
	"github.com/lixenwraith/glyph-rain/systems"
)

// State is the scheduler lifecycle state
type State int

const (
	StateRunning State = iota
	StatePaused
	StateTerminated
	StateAwaitingFinalKey
	StateDone
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	case StateAwaitingFinalKey:
		return "awaiting-final-key"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Reason records why the loop terminated
type Reason int

const (
	ReasonNone Reason = iota
	ReasonQuit
	ReasonTarget
)

// Alerter signals a found word to the user
type Alerter interface {
	Alert()
}

// AlertFunc adapts a function to Alerter
type AlertFunc func()

// Alert implements Alerter
func (f AlertFunc) Alert() { f() }

// Result summarizes a finished session
type Result struct {
	Reason  Reason
	Found   []string
	Frames  uint64
	Elapsed time.Duration
}

// Scheduler drives the single-threaded frame loop
// Each tick: poll input, update entities, detect words, spawn clusters, render, pace
type Scheduler struct {
	cfg      Config
	surface  render.Surface
	rng      components.Rand
	journal  journal.Sink
	alert    Alerter
	sleep    func(time.Duration)
	time     TimeProvider
	commands Commands

	session  *Session
	drops    *systems.DropSystem
	clusters *systems.ClusterSystem

	state  State
	reason Reason
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithRand injects the randomness source
func WithRand(rng components.Rand) Option {
	return func(s *Scheduler) { s.rng = rng }
}

// WithJournal sets the found-word sink
func WithJournal(sink journal.Sink) Option {
	return func(s *Scheduler) { s.journal = sink }
}

// WithAlerter sets the found-word alert
func WithAlerter(a Alerter) Option {
	return func(s *Scheduler) { s.alert = a }
}

// WithSleeper replaces time.Sleep for pacing
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Scheduler) { s.sleep = sleep }
}

// WithTimeProvider sets the wall clock behind engine time
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Scheduler) { s.time = tp }
}

// WithCommands replaces the key bindings
func WithCommands(c Commands) Option {
	return func(s *Scheduler) { s.commands = c }
}

// NewScheduler creates a scheduler in Running(paused=false)
func NewScheduler(cfg Config, surface render.Surface, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:      cfg,
		surface:  surface,
		journal:  journal.NopSink{},
		sleep:    time.Sleep,
		time:     NewMonotonicTimeProvider(),
		commands: DefaultCommands(),
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed, err := NewSeed()
		if err != nil {
			seed = s.time.Now().UnixNano()
		}
		s.rng = NewRand(seed)
	}
	if s.alert == nil {
		s.alert = AlertFunc(surface.Beep)
	}
	if s.cfg.Lifespan <= 0 {
		s.cfg.Lifespan = constants.ClusterLifespan
	}

	s.session = NewSession(cfg.TargetCount, cfg.InitialDelay, NewPausableClock(s.time))
	s.drops = systems.NewDropSystem(s.rng)
	s.clusters = systems.NewClusterSystem(s.cfg.Lifespan)
	return s
}

// Session returns the session state
func (s *Scheduler) Session() *Session {
	return s.session
}

// Drops returns the drop system
func (s *Scheduler) Drops() *systems.DropSystem {
	return s.drops
}

// Clusters returns the cluster system
func (s *Scheduler) Clusters() *systems.ClusterSystem {
	return s.clusters
}

// Commands returns the key bindings for registration
func (s *Scheduler) Commands() Commands {
	return s.commands
}

// State returns the lifecycle state
func (s *Scheduler) State() State {
	if s.state == StateRunning && s.session.Paused() {
		return StatePaused
	}
	return s.state
}

// Reason returns why the loop terminated
func (s *Scheduler) Reason() Reason {
	return s.reason
}

// Run executes the frame loop until quit or target, shows the summary, and waits for a key
// Context cancellation is observed at the input poll point, like a quit command,
// and also releases the final key wait
func (s *Scheduler) Run(ctx context.Context) Result {
	s.surface.HideCursor()
	if s.cfg.InitialDrops {
		w, rows := s.viewport()
		s.drops.Seed(w, rows)
	}

	for s.Tick(ctx) {
	}

	s.showSummary()
	s.state = StateAwaitingFinalKey
	if ctx.Err() == nil {
		s.surface.WaitKey(ctx)
	}
	s.state = StateDone

	return Result{
		Reason:  s.reason,
		Found:   s.session.Found(),
		Frames:  s.session.Frame(),
		Elapsed: s.session.Elapsed(),
	}
}

// Tick runs one loop iteration and reports whether the loop continues
func (s *Scheduler) Tick(ctx context.Context) bool {
	if s.state != StateRunning {
		return false
	}
	s.session.NextFrame()

	if ctx.Err() != nil {
		s.terminate(ReasonQuit)
		return false
	}
	if key, ok := s.surface.PollKey(); ok {
		if s.commands.Dispatch(key, s) == ActionQuit {
			s.terminate(ReasonQuit)
			return false
		}
	}

	paused := s.session.Paused()
	if !paused {
		s.update(ctx)
		s.draw()
	}
	if !paused || s.cfg.PaceWhilePaused {
		s.sleep(s.session.Delay())
	}

	if s.session.Done() {
		s.terminate(ReasonTarget)
		return false
	}
	return true
}

// viewport returns width and drop area height; the last row holds the HUD
func (s *Scheduler) viewport() (width, rows int) {
	w, h := s.surface.Size()
	rows = h - 1
	if rows < 1 {
		rows = 1
	}
	return w, rows
}

// Center returns the cluster spawn point for the current viewport
func (s *Scheduler) Center() (x, y int) {
	w, rows := s.viewport()
	return w / 2, rows / 2
}

// update advances entities and runs detection
func (s *Scheduler) update(ctx context.Context) {
	w, rows := s.viewport()

	s.drops.Spawn(w, rows)
	for _, d := range s.drops.Update(rows) {
		s.detect(ctx, d)
	}
	s.clusters.Update()
}

// detect claims at most one unclaimed dictionary word from a retired drop
func (s *Scheduler) detect(ctx context.Context, d *components.Drop) {
	word, ok := systems.MatchWord(d.Probe(), s.cfg.Words, s.session.Claimed)
	if !ok || !s.session.Claim(word) {
		return
	}

	entry := journal.Entry{
		Word:       word,
		EngineTime: s.session.Elapsed(),
		At:         s.time.Now(),
	}
	// The word is already claimed, so its entry must survive a late cancellation
	if err := s.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("Journal write failed for %q: %v", word, err)
	}

	x, y := s.Center()
	s.clusters.Spawn(word, x, y, constants.LayerGradient(0))
	s.alert.Alert()
	log.Printf("Word found: %s (%d/%d)", word, s.session.FoundCount(), s.cfg.TargetCount)
}

// draw renders the frame
func (s *Scheduler) draw() {
	s.surface.Clear()
	for _, d := range s.drops.Drops() {
		render.DrawDrop(s.surface, d)
	}
	for _, c := range s.clusters.Clusters() {
		render.DrawCluster(s.surface, c)
	}
	render.DrawSpinner(s.surface, s.session.SpinnerGlyph())
	render.DrawHUD(s.surface, render.FormatHUD(
		s.session.Elapsed(),
		s.session.WordsPerSecond(),
		s.drops.Count(),
		s.clusters.Count(),
	))
	s.surface.Show()
}

func (s *Scheduler) terminate(reason Reason) {
	s.state = StateTerminated
	s.reason = reason
	log.Printf("Session terminated: reason=%d found=%d frames=%d", reason, s.session.FoundCount(), s.session.Frame())
}

// showSummary clears the screen and lists found words
func (s *Scheduler) showSummary() {
	_, rows := s.viewport()
	msg := constants.CompleteMessage
	if s.reason == ReasonQuit {
		msg = constants.QuitMessage
	}
	s.surface.Clear()
	render.DrawSummary(s.surface, rows, msg, s.session.Found())
	s.surface.Show()
}
