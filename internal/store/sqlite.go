// Package store records host events in SQLite so sessions can be replayed
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/young1lin/tabline/internal/host"
)

// ErrRecordingNotFound is returned when a recording name is unknown
var ErrRecordingNotFound = errors.New("recording not found")

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Recording summarizes one stored recording
type Recording struct {
	Name      string
	StartedAt time.Time
	Events    int
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS recordings (
		name TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		recording TEXT NOT NULL REFERENCES recordings(name) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		timestamp INTEGER NOT NULL,
		type TEXT NOT NULL,
		payload TEXT NOT NULL,
		PRIMARY KEY (recording, seq)
	);
	`

	_, err := db.Exec(query)
	return err
}

// Recorder appends events to one recording. It implements host.Recorder.
type Recorder struct {
	db   *DB
	name string

	mu  sync.Mutex
	seq int64
}

// NewRecorder starts or resumes the named recording
func (db *DB) NewRecorder(ctx context.Context, name string) (*Recorder, error) {
	if name == "" {
		return nil, errors.New("recording name is empty")
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO recordings (name, started_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
		name, time.Now().Unix())
	if err != nil {
		return nil, err
	}

	var last sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(seq) FROM events WHERE recording = ?`, name).Scan(&last); err != nil {
		return nil, err
	}

	return &Recorder{db: db, name: name, seq: last.Int64}, nil
}

// Name returns the recording name
func (r *Recorder) Name() string {
	return r.name
}

// Record appends an event
func (r *Recorder) Record(ctx context.Context, ev host.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO events (recording, seq, timestamp, type, payload) VALUES (?, ?, ?, ?, ?)`,
		r.name, r.seq+1, time.Now().UnixMilli(), string(ev.Type), string(payload))
	if err != nil {
		return err
	}
	r.seq++
	return nil
}

// ListRecordings returns every recording, newest first
func (db *DB) ListRecordings(ctx context.Context) ([]Recording, error) {
	query := `
	SELECT r.name, r.started_at, COUNT(e.seq)
	FROM recordings r
	LEFT JOIN events e ON e.recording = r.name
	GROUP BY r.name, r.started_at
	ORDER BY r.started_at DESC, r.name
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recordings []Recording
	for rows.Next() {
		var rec Recording
		var ts int64
		if err := rows.Scan(&rec.Name, &ts, &rec.Events); err != nil {
			return nil, err
		}
		rec.StartedAt = time.Unix(ts, 0)
		recordings = append(recordings, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recordings, nil
}

// Events returns the events of a recording in the order they were recorded
func (db *DB) Events(ctx context.Context, name string) ([]host.Event, error) {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM recordings WHERE name = ?`, name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordingNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT seq, payload FROM events WHERE recording = ? ORDER BY seq`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []host.Event
	for rows.Next() {
		var seq int64
		var payload string
		if err := rows.Scan(&seq, &payload); err != nil {
			return nil, err
		}
		var ev host.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, fmt.Errorf("event %d of %s: %w", seq, name, err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// DeleteRecording removes a recording and its events
func (db *DB) DeleteRecording(ctx context.Context, name string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM events WHERE recording = ?`, name); err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM recordings WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRecordingNotFound, name)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
