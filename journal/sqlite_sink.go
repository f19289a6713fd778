package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS found_words (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL,
    engine_ms INTEGER NOT NULL,
    found_at INTEGER NOT NULL
);
`

// SQLiteSink inserts one row per entry into a found_words table
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite journal database
func OpenSQLite(path string) (*SQLiteSink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal database path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

// Record implements Sink
func (s *SQLiteSink) Record(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO found_words (word, engine_ms, found_at) VALUES (?, ?, ?)`,
		e.Word, e.EngineTime.Milliseconds(), at.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert found word: %w", err)
	}
	return nil
}

// Entries returns all recorded entries in insertion order
func (s *SQLiteSink) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, engine_ms, found_at FROM found_words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query found words: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			word     string
			engineMs int64
			foundAt  int64
		)
		if err := rows.Scan(&word, &engineMs, &foundAt); err != nil {
			return nil, fmt.Errorf("scan found word: %w", err)
		}
		out = append(out, Entry{
			Word:       word,
			EngineTime: time.Duration(engineMs) * time.Millisecond,
			At:         time.UnixMilli(foundAt).UTC(),
		})
	}
	return out, rows.Err()
}

// Close implements Sink
func (s *SQLiteSink) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
