package benchmarks

import (
	"path/filepath"
	"testing"

	"github.com/randalmurphal/wumpus/pkg/wumpus/journal"
)

func sampleEntry() journal.Entry {
	return journal.Entry{
		Session: "bench",
		Tag:     "player-forward",
		Text:    "Player moves forward at (1, 0)",
		PostID:  "3f1c2a9e-8d7b-4c1e-9a55-0c6c2b1d7e42",
	}
}

// BenchmarkMemoryStore_Append measures in-memory journal append.
func BenchmarkMemoryStore_Append(b *testing.B) {
	store := journal.NewMemoryStore()
	e := sampleEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Append(e)
	}
}

// BenchmarkSQLiteStore_Append measures SQLite journal append.
func BenchmarkSQLiteStore_Append(b *testing.B) {
	store := createSQLiteStore(b)
	e := sampleEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Append(e)
	}
}

// BenchmarkSQLiteStore_List measures reading a 100-entry session.
func BenchmarkSQLiteStore_List(b *testing.B) {
	store := createSQLiteStore(b)
	e := sampleEntry()
	for i := 0; i < 100; i++ {
		_, _ = store.Append(e)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.List("bench")
	}
}

func createSQLiteStore(b *testing.B) *journal.SQLiteStore {
	b.Helper()
	store, err := journal.NewSQLiteStore(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { store.Close() })
	return store
}
