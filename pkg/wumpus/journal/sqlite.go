package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists entries to a SQLite database so a transcript
// survives the process.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (or creates) a journal database at path.
// Use ":memory:" for a throwaway store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS journal (
			session TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			tag TEXT NOT NULL,
			text TEXT NOT NULL,
			post_id TEXT NOT NULL DEFAULT '',
			cause_id TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL,
			PRIMARY KEY (session, sequence)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(e Entry) (Entry, error) {
	if e.Session == "" {
		return Entry{}, ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Entry{}, ErrStoreClosed
	}

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	err := s.db.QueryRow(`
		INSERT INTO journal (session, sequence, tag, text, post_id, cause_id, timestamp)
		VALUES (
			?,
			COALESCE((SELECT MAX(sequence) FROM journal WHERE session = ?), 0) + 1,
			?, ?, ?, ?, ?
		)
		RETURNING sequence
	`, e.Session, e.Session, e.Tag, e.Text, e.PostID, e.CauseID,
		e.Timestamp.Format(time.RFC3339Nano)).Scan(&e.Sequence)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	return e, nil
}

// List implements Store.
func (s *SQLiteStore) List(session string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT sequence, tag, text, post_id, cause_id, timestamp
		FROM journal
		WHERE session = ?
		ORDER BY sequence
	`, session)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e := Entry{Session: session}
		var timestamp string
		if err := rows.Scan(&e.Sequence, &e.Tag, &e.Text, &e.PostID, &e.CauseID, &timestamp); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Sessions implements Store.
func (s *SQLiteStore) Sessions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`SELECT DISTINCT session FROM journal ORDER BY session`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return ids, nil
}

// DeleteSession implements Store.
func (s *SQLiteStore) DeleteSession(session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM journal WHERE session = ?`, session); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
