// Package registry provides a generic thread-safe registry for values indexed by key.
//
// Registry is designed for read-heavy workloads using sync.RWMutex. It supports
// any comparable key type and any value type through Go generics, and it
// remembers insertion order so iteration is deterministic.
//
// # Basic Usage
//
//	r := registry.New[string, int]()
//	r.Add("one", 1)
//	r.Add("one", 100) // false: already present, value unchanged
//
//	value, ok := r.Get("one") // 1, true
//
// Register is the upsert variant: it overwrites the value but keeps the
// key's position.
//
// # Snapshots
//
// Values and Range work on a snapshot taken under the read lock, so callers
// may mutate the registry while walking it:
//
//	for _, v := range r.Values() {
//	    r.Delete(keyOf(v)) // does not disturb the loop
//	}
//
// The event dispatcher relies on this to let listeners register and
// unregister from inside a notification.
package registry
