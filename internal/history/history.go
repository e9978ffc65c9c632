// Package history records executed render jobs in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Status is the outcome of a render job
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

const schema = `
CREATE TABLE IF NOT EXISTS render_jobs (
	id          TEXT PRIMARY KEY,
	kind        TEXT NOT NULL,
	output      TEXT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_render_jobs_created_at ON render_jobs(created_at);
`

// Entry is one row of render history
type Entry struct {
	JobID     string
	Kind      string
	Output    string
	Status    Status
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Recorder persists render outcomes
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Store is a SQLite-backed Recorder
type Store struct {
	db *sql.DB
}

var _ Recorder = (*Store)(nil)

// Open opens (creating if needed) the history database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// sqlite serializes writers; a single connection avoids "database is locked"
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts e, replacing any earlier entry with the same job ID
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO render_jobs (id, kind, output, status, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.JobID, e.Kind, e.Output, string(e.Status), e.Error, e.Duration.Milliseconds(), e.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record job %s: %w", e.JobID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, output, status, error, duration_ms, created_at
		 FROM render_jobs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			status     string
			durationMS int64
		)
		if err := rows.Scan(&e.JobID, &e.Kind, &e.Output, &status, &e.Error, &durationMS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Status = Status(status)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
