// Package event provides the event taxonomy and the dispatcher that carries
// every message between the model, views and controllers of the wumpus game.
//
// # Overview
//
//   - Event: an immutable tagged value with kind-specific payload
//   - Tag: the closed set of event kinds, with descriptions and a
//     low-signal classification used to keep ticks out of the logs
//   - Listener: anything that can Notify(ctx, Event)
//   - Dispatcher: synchronous broadcast to every registered listener
//
// Delivery is synchronous and unfiltered. There are no topics, priorities
// or queues: Post returns after every listener has seen the event.
//
// # Events
//
// Events are built with one constructor per kind and read through
// accessors:
//
//	evt := event.PlayerTurn(event.Left(), event.West)
//	evt.Tag()       // event.TagPlayerTurn
//	evt.Direction() // event.Left()
//	evt.String()    // "Player turns left"
//
// Direction has exactly two values, Left() and Right(); there is no way to
// build a third, and neither can be reassigned.
//
// # Dispatcher
//
// The dispatcher is an explicit object, created at startup and handed to
// every component:
//
//	d := event.NewDispatcher(event.WithLogger(logger))
//	defer d.Close()
//
//	view := &ConsoleView{}
//	event.Register(d, view)
//	d.Post(ctx, event.Tick())
//	event.Unregister(d, view)
//
// Register and Unregister are functions rather than methods because they
// need the listener's concrete pointer type to build a weak reference.
//
// # Listener Lifetime
//
// The dispatcher does not own its listeners. The registry stores weak
// pointers, so a listener whose owner drops it is reclaimed by the garbage
// collector even while registered. Post notices the dead reference, skips
// it, and removes it from the registry.
//
// # Re-entrancy
//
// Listeners may post from inside Notify:
//
//	func (m *Model) Notify(ctx context.Context, evt event.Event) error {
//	    if evt.Tag() == event.TagStep {
//	        m.d.Post(ctx, event.PlayerForward(m.advance()))
//	    }
//	    return nil
//	}
//
// Each Post iterates over a snapshot of the registry taken when it starts,
// so nested posts and registry changes never disturb the outer delivery.
// Pass the received ctx to nested posts: it carries the post ID, the cause
// ID and the nesting depth checked against WithMaxDepth.
//
// # Error Handling
//
// A listener that returns an error, or panics, does not stop delivery.
// The failure is wrapped in *NotifyError, logged, counted, and passed to
// the WithErrorHandler hook; the next listener is then notified. The
// producer never sees listener errors.
//
// # Diagnostics
//
// Every post whose tag is not quiet produces a DEBUG log line containing
// the event's display text. Low-signal tags (tick, step, help, toggle-view,
// toggle-auto, busy, ready) are quiet by default; WithQuietTags overrides
// the set.
package event
