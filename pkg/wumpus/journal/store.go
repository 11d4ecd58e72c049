// Package journal records the events of a game session as a transcript.
package journal

import (
	"errors"
	"time"
)

// Store persists journal entries grouped by session.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append adds an entry to the end of its session and returns it with
	// Sequence (and Timestamp, if zero) filled in. Sequences start at 1.
	Append(e Entry) (Entry, error)

	// List returns a session's entries ordered by sequence.
	// Returns empty slice (not error) if the session has no entries.
	List(session string) ([]Entry, error)

	// Sessions returns the IDs of every session with at least one entry,
	// sorted.
	Sessions() ([]string, error)

	// DeleteSession removes a session's entries.
	// Returns nil if the session doesn't exist.
	DeleteSession(session string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Entry is one recorded event.
type Entry struct {
	Session   string
	Sequence  int
	Tag       string
	Text      string
	PostID    string
	CauseID   string
	Timestamp time.Time
}

var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")

	// ErrNoSession indicates an entry was appended without a session ID.
	ErrNoSession = errors.New("journal entry has no session")
)
