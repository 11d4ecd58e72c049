package event

import "fmt"

// NotifyError reports a listener that failed while handling an event.
// Exactly one of Err and Panic is set.
type NotifyError struct {
	Listener string // Listener type, e.g. "*view.Console"
	Event    Event  // The event being delivered
	Err      error  // Error returned by Notify
	Panic    any    // Value recovered from a panicking Notify
}

// Error implements error interface.
func (e *NotifyError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("listener %s panicked on %s: %v", e.Listener, e.Event.Tag(), e.Panic)
	}
	return fmt.Sprintf("listener %s failed on %s: %v", e.Listener, e.Event.Tag(), e.Err)
}

// Unwrap returns the underlying error.
func (e *NotifyError) Unwrap() error {
	return e.Err
}
