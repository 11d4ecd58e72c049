package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/randalmurphal/wumpus/pkg/wumpus/event"
)

// Recorder is an event listener that appends what it hears to a Store.
//
// Low-signal events are skipped unless IncludeLowSignal is set. A store
// failure is returned from Notify, where the dispatcher's failure policy
// takes over.
type Recorder struct {
	store     Store
	session   string
	lowSignal bool
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSession records under the given session ID instead of a fresh one.
func WithSession(id string) RecorderOption {
	return func(r *Recorder) {
		if id != "" {
			r.session = id
		}
	}
}

// IncludeLowSignal records tick, step and the other low-signal events too.
func IncludeLowSignal() RecorderOption {
	return func(r *Recorder) {
		r.lowSignal = true
	}
}

// NewRecorder creates a recorder writing to store. Without WithSession the
// recorder starts a new session with a random ID.
func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{store: store}
	for _, opt := range opts {
		opt(r)
	}
	if r.session == "" {
		r.session = uuid.NewString()
	}
	return r
}

// Session returns the session ID entries are recorded under.
func (r *Recorder) Session() string {
	return r.session
}

// Notify implements event.Listener.
func (r *Recorder) Notify(ctx context.Context, evt event.Event) error {
	if evt.LowSignal() && !r.lowSignal {
		return nil
	}

	_, err := r.store.Append(Entry{
		Session: r.session,
		Tag:     evt.Tag().String(),
		Text:    evt.String(),
		PostID:  event.PostID(ctx),
		CauseID: event.CauseID(ctx),
	})
	if err != nil {
		return fmt.Errorf("record %s: %w", evt.Tag(), err)
	}
	return nil
}

// Transcript returns the recorded display texts of the session in order.
func (r *Recorder) Transcript() ([]string, error) {
	entries, err := r.store.List(r.session)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Text
	}
	return lines, nil
}
