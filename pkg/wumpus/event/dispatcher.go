package event

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
	"weak"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/wumpus/pkg/wumpus/observability"
	"github.com/randalmurphal/wumpus/pkg/wumpus/registry"
)

// Dispatcher broadcasts events to registered listeners.
//
// The registry holds weak references: registering a listener does not keep
// it alive. A listener reclaimed without being unregistered is skipped and
// purged the next time a Post reaches it.
//
// All methods are safe for concurrent use. Delivery happens outside the
// registry lock, so listeners may Post, Register and Unregister from inside
// Notify.
type Dispatcher struct {
	cfg       dispatcherConfig
	listeners *registry.Registry[any, *entry] // weak.Pointer[T] -> entry
	closed    atomic.Bool
}

// entry resolves a registered listener without holding a strong reference.
type entry struct {
	name    string
	resolve func() Listener // nil once the listener is reclaimed
}

// NewDispatcher creates a dispatcher. Create one per application and pass
// it to every component that posts or listens.
func NewDispatcher(opts ...Option) *Dispatcher {
	cfg := defaultDispatcherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dispatcher{
		cfg:       cfg,
		listeners: registry.New[any, *entry](),
	}
}

// Register adds l to d's listeners. Registering a listener twice is a no-op.
//
// Only a weak reference to l is kept. The caller owns l and must keep it
// reachable for as long as it should receive events. Listeners are identified
// by address, so zero-sized listener types cannot be told apart.
func Register[T any, PT interface {
	*T
	Listener
}](d *Dispatcher, l PT) {
	p := (*T)(l)
	if d == nil || p == nil || d.closed.Load() {
		return
	}

	ref := weak.Make(p)
	name := fmt.Sprintf("%T", l)
	e := &entry{
		name: name,
		resolve: func() Listener {
			if v := ref.Value(); v != nil {
				return PT(v)
			}
			return nil
		},
	}

	if d.listeners.Add(ref, e) {
		observability.LogListenerRegistered(d.cfg.logger, name)
	}
}

// Unregister removes l from d's listeners. Removing a listener that is not
// registered is a no-op.
func Unregister[T any, PT interface {
	*T
	Listener
}](d *Dispatcher, l PT) {
	p := (*T)(l)
	if d == nil || p == nil {
		return
	}
	if d.listeners.Delete(weak.Make(p)) {
		observability.LogListenerUnregistered(d.cfg.logger, fmt.Sprintf("%T", l))
	}
}

// Registered reports whether l is currently registered with d.
func Registered[T any, PT interface {
	*T
	Listener
}](d *Dispatcher, l PT) bool {
	p := (*T)(l)
	if d == nil || p == nil {
		return false
	}
	return d.listeners.Has(weak.Make(p))
}

// Post delivers evt to every registered, live listener and returns once all
// of them have been visited.
//
// The listener set is snapshotted when Post starts: listeners registered
// during delivery do not see evt, listeners unregistered during delivery
// still do. Listener failures are logged and never reach the caller.
func (d *Dispatcher) Post(ctx context.Context, evt Event) {
	if d.closed.Load() {
		return
	}

	parent := postFromContext(ctx)
	depth := parent.depth + 1
	tag := evt.Tag().String()

	if d.cfg.maxDepth > 0 && depth > d.cfg.maxDepth {
		observability.LogDepthExceeded(d.cfg.logger, tag, depth, d.cfg.maxDepth)
		d.cfg.metrics.RecordDropped(ctx, tag)
		return
	}

	post := postInfo{id: uuid.NewString(), causeID: parent.id, depth: depth}
	ctx = withPost(ctx, post)

	if !d.isQuiet(evt.Tag()) {
		observability.LogEventPosted(d.cfg.logger, post.id, post.causeID, tag, evt.String(), depth)
	}

	ctx, span := d.cfg.spans.StartPostSpan(ctx, observability.Post{
		Tag:     tag,
		ID:      post.id,
		CauseID: post.causeID,
		Depth:   depth,
	})
	start := time.Now()
	delivered := 0
	var failures []error

	d.listeners.Range(func(key any, e *entry) bool {
		l := e.resolve()
		if l == nil {
			d.purge(ctx, key, e, tag)
			return true
		}
		if err := d.notify(ctx, l, e.name, evt); err != nil {
			failures = append(failures, err)
		}
		delivered++
		return true
	})

	d.cfg.metrics.RecordPost(ctx, tag, delivered, time.Since(start))
	d.cfg.spans.EndSpanWithError(span, errors.Join(failures...))
}

// notify calls l.Notify and turns a returned error or recovered panic into
// a handled *NotifyError.
func (d *Dispatcher) notify(ctx context.Context, l Listener, name string, evt Event) (err error) {
	if d.cfg.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				err = d.fail(ctx, &NotifyError{Listener: name, Event: evt, Panic: r})
			}
		}()
	}

	if nerr := l.Notify(ctx, evt); nerr != nil {
		return d.fail(ctx, &NotifyError{Listener: name, Event: evt, Err: nerr})
	}
	return nil
}

func (d *Dispatcher) fail(ctx context.Context, nerr *NotifyError) error {
	tag := nerr.Event.Tag().String()
	observability.LogNotifyError(d.cfg.logger, nerr.Listener, tag, nerr)
	d.cfg.metrics.RecordNotifyError(ctx, tag, nerr.Listener)
	if d.cfg.onError != nil {
		d.cfg.onError(nerr.Event, nerr.Listener, nerr)
	}
	return nerr
}

func (d *Dispatcher) purge(ctx context.Context, key any, e *entry, tag string) {
	if !d.listeners.Delete(key) {
		// Already purged by a nested post.
		return
	}
	observability.LogStaleListener(d.cfg.logger, e.name, tag)
	d.cfg.metrics.RecordStalePurge(ctx, e.name)
	d.cfg.spans.AddSpanEvent(ctx, "stale listener purged", attribute.String("listener", e.name))
}

func (d *Dispatcher) isQuiet(t Tag) bool {
	if d.cfg.quiet == nil {
		return t.LowSignal()
	}
	return d.cfg.quiet[t]
}

// Len returns the number of registry entries, including reclaimed listeners
// that no Post has purged yet.
func (d *Dispatcher) Len() int {
	return d.listeners.Len()
}

// Close drops every registration. After Close, Register and Post are no-ops.
func (d *Dispatcher) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	d.listeners.Clear()
	return nil
}

// Context keys for post correlation.
type contextKey string

const postKey contextKey = "wumpus_post"

type postInfo struct {
	id      string
	causeID string
	depth   int
}

func postFromContext(ctx context.Context) postInfo {
	if v, ok := ctx.Value(postKey).(postInfo); ok {
		return v
	}
	return postInfo{}
}

func withPost(ctx context.Context, p postInfo) context.Context {
	return context.WithValue(ctx, postKey, p)
}

// PostID returns the ID of the post being delivered, or "" outside Notify.
func PostID(ctx context.Context) string {
	return postFromContext(ctx).id
}

// CauseID returns the ID of the post whose listener issued the current
// post, or "" for a top-level post.
func CauseID(ctx context.Context) string {
	return postFromContext(ctx).causeID
}

// Depth returns how many posts are nested at this point, 1 for a top-level
// post and 0 outside Notify.
func Depth(ctx context.Context) int {
	return postFromContext(ctx).depth
}
