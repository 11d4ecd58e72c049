package journal

import (
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps entries in memory. Data is lost when the process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Entry
	closed   bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]Entry),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(e Entry) (Entry, error) {
	if e.Session == "" {
		return Entry{}, ErrNoSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Entry{}, ErrStoreClosed
	}

	entries := m.sessions[e.Session]
	e.Sequence = len(entries) + 1
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	m.sessions[e.Session] = append(entries, e)
	return e, nil
}

// List implements Store.
func (m *MemoryStore) List(session string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	entries := m.sessions[session]
	if entries == nil {
		return []Entry{}, nil
	}
	return slices.Clone(entries), nil
}

// Sessions implements Store.
func (m *MemoryStore) Sessions() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// DeleteSession implements Store.
func (m *MemoryStore) DeleteSession(session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.sessions, session)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.sessions = nil
	return nil
}

// Len returns the total number of entries across all sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, entries := range m.sessions {
		n += len(entries)
	}
	return n
}
