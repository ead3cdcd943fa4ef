// Package session provides SQLite-based persistence for walkthrough
// traces: which rooms a session visited, in what order, at what
// abnormality. Traces are analysis data, never gameplay state; the
// engine runs fine without a store attached.
package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and the active session row.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Open opens or creates the trace database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace database: %w", err)
	}

	// WAL keeps trace writes off the frame thread's critical path
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run trace migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the trace schema if it doesn't exist.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			room_index INTEGER NOT NULL,
			template_id TEXT NOT NULL,
			abnormality REAL NOT NULL,
			seed INTEGER NOT NULL,
			entered_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transitions_session
			ON transitions(session_id, room_index)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// StartSession opens a new session row and makes it current. Returns
// the new session ID.
func (s *Store) StartSession(seed int64) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, seed) VALUES (?, ?)",
		id, seed,
	)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	s.sessionID = id
	return id, nil
}

// SessionID returns the current session ID, or "" before StartSession.
func (s *Store) SessionID() string {
	return s.sessionID
}

// RecordTransition appends one room transition to the current session.
// Implements progression.TransitionRecorder.
func (s *Store) RecordTransition(roomIndex int, templateID string, abnormality float64, seed int64) error {
	if s.sessionID == "" {
		return fmt.Errorf("no active session")
	}
	_, err := s.db.Exec(
		`INSERT INTO transitions (session_id, room_index, template_id, abnormality, seed, entered_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.sessionID, roomIndex, templateID, abnormality, seed, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record transition: %w", err)
	}
	return nil
}

// Transition is one recorded room entry.
type Transition struct {
	RoomIndex   int
	TemplateID  string
	Abnormality float64
	EnteredAt   time.Time
}

// Transitions returns the recorded transitions for a session in entry
// order.
func (s *Store) Transitions(sessionID string) ([]Transition, error) {
	rows, err := s.db.Query(
		`SELECT room_index, template_id, abnormality, entered_at
		 FROM transitions WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close()

	var out []Transition
	for rows.Next() {
		var t Transition
		if err := rows.Scan(&t.RoomIndex, &t.TemplateID, &t.Abnormality, &t.EnteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan transition: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// MaxAbnormality returns the deepest abnormality a session reached.
func (s *Store) MaxAbnormality(sessionID string) (float64, error) {
	var max sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(abnormality) FROM transitions WHERE session_id = ?",
		sessionID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to query max abnormality: %w", err)
	}
	return max.Float64, nil
}
