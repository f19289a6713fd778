package journal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Entry is one found-word event
type Entry struct {
	Word       string
	EngineTime time.Duration // Session time excluding pauses
	At         time.Time     // Wall clock
}

// String formats the entry message without timestamp
func (e Entry) String() string {
	return fmt.Sprintf("%s found at engine time %.2fs", e.Word, e.EngineTime.Seconds())
}

// Sink receives found-word entries
type Sink interface {
	Record(ctx context.Context, e Entry) error
	Close() error
}

// NopSink discards entries
type NopSink struct{}

// Record implements Sink
func (NopSink) Record(context.Context, Entry) error { return nil }

// Close implements Sink
func (NopSink) Close() error { return nil }

// MultiSink fans entries out to every sink, joining errors
type MultiSink []Sink

// Record implements Sink
func (m MultiSink) Record(ctx context.Context, e Entry) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close implements Sink
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
