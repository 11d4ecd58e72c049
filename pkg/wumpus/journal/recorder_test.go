package journal_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/wumpus/pkg/wumpus/event"
	"github.com/randalmurphal/wumpus/pkg/wumpus/journal"
)

func TestRecorder_SkipsLowSignal(t *testing.T) {
	store := journal.NewMemoryStore()
	d := event.NewDispatcher()
	rec := journal.NewRecorder(store)
	event.Register(d, rec)

	ctx := context.Background()
	d.Post(ctx, event.AppStart(nil))
	d.Post(ctx, event.Tick())
	d.Post(ctx, event.Step())
	d.Post(ctx, event.PlayerTurn(event.Right(), event.East))
	d.Post(ctx, event.Busy())
	d.Post(ctx, event.Quit())

	lines, err := rec.Transcript()
	require.NoError(t, err)
	assert.Equal(t, []string{"Program starts", "Player turns right", "Program quits"}, lines)
}

func TestRecorder_IncludeLowSignal(t *testing.T) {
	store := journal.NewMemoryStore()
	rec := journal.NewRecorder(store, journal.IncludeLowSignal(), journal.WithSession("game-1"))

	require.NoError(t, rec.Notify(context.Background(), event.Tick()))
	require.NoError(t, rec.Notify(context.Background(), event.Help()))

	assert.Equal(t, "game-1", rec.Session())
	entries, err := store.List("game-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "tick", entries[0].Tag)
	assert.Equal(t, "help", entries[1].Tag)
}

func TestRecorder_DefaultSessionIsUnique(t *testing.T) {
	store := journal.NewMemoryStore()
	a := journal.NewRecorder(store)
	b := journal.NewRecorder(store, journal.WithSession(""))

	assert.NotEmpty(t, a.Session())
	assert.NotEmpty(t, b.Session())
	assert.NotEqual(t, a.Session(), b.Session())
}

func TestRecorder_CapturesPostCorrelation(t *testing.T) {
	store := journal.NewMemoryStore()
	d := event.NewDispatcher()
	rec := journal.NewRecorder(store)

	model := &stepper{d: d}
	event.Register(d, model)
	event.Register(d, rec)

	d.Post(context.Background(), event.Reset())

	entries, err := store.List(rec.Session())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The nested post is delivered, and recorded, before the outer one.
	inner, outer := entries[0], entries[1]
	assert.Equal(t, "player-forward", inner.Tag)
	assert.Equal(t, "reset", outer.Tag)
	assert.NotEmpty(t, outer.PostID)
	assert.Empty(t, outer.CauseID)
	assert.Equal(t, outer.PostID, inner.CauseID)
	runtime.KeepAlive(model)
}

func TestRecorder_StoreErrorGoesToDispatcher(t *testing.T) {
	store := journal.NewMemoryStore()
	require.NoError(t, store.Close())

	var failures []error
	d := event.NewDispatcher(event.WithErrorHandler(func(_ event.Event, _ string, err error) {
		failures = append(failures, err)
	}))
	rec := journal.NewRecorder(store)
	event.Register(d, rec)

	d.Post(context.Background(), event.Quit())

	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], journal.ErrStoreClosed)
	var nerr *event.NotifyError
	require.True(t, errors.As(failures[0], &nerr))
	assert.Equal(t, "*journal.Recorder", nerr.Listener)
	runtime.KeepAlive(rec)
}

func TestRecorder_Transcript_ClosedStore(t *testing.T) {
	store := journal.NewMemoryStore()
	rec := journal.NewRecorder(store)
	require.NoError(t, store.Close())

	_, err := rec.Transcript()
	assert.ErrorIs(t, err, journal.ErrStoreClosed)
}

// stepper posts a player-forward from inside its reset handler.
type stepper struct {
	d *event.Dispatcher
}

func (s *stepper) Notify(ctx context.Context, evt event.Event) error {
	if evt.Tag() == event.TagReset {
		s.d.Post(ctx, event.PlayerForward(event.Position{X: 0, Y: 1}))
	}
	return nil
}
