/*
Package journal keeps a transcript of a game session.

A Recorder is registered with the dispatcher like any other listener and
appends every meaningful event to a Store:

	store, err := journal.NewSQLiteStore("session.db")
	if err != nil {
	    return err
	}
	defer store.Close()

	rec := journal.NewRecorder(store)
	event.Register(d, rec)

	// ... play ...

	lines, err := rec.Transcript()

Entries carry the post and cause IDs of the delivery, so a transcript can
be traced back to the log lines and spans of the same post.

# Stores

  - MemoryStore: in-process, for tests and throwaway sessions
  - SQLiteStore: a single file via modernc.org/sqlite (pure Go, WAL mode)

Both are safe for concurrent use and return ErrStoreClosed after Close.
*/
package journal
