package journal

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// FileSink appends timestamped entries to a text file
type FileSink struct {
	file   *os.File
	logger *log.Logger
}

// OpenFile opens path in append mode, creating it if needed
func OpenFile(path string) (*FileSink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &FileSink{
		file:   f,
		logger: log.New(f, "", log.LstdFlags|log.Lmicroseconds),
	}, nil
}

// Record implements Sink
func (s *FileSink) Record(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.logger.Output(2, e.String()); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Close implements Sink
func (s *FileSink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}
