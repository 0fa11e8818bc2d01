// Package storage provides storage backends for question records.
//
// # Storage Backends
//
// The storage package defines the Storage interface and provides two
// implementations:
//
//   - SQLite: embedded database for single-node deployments
//   - Memory: in-memory storage for testing
//
// # SQLite Backend
//
// The SQLite backend provides durable storage with:
//
//   - WAL mode for concurrent reads alongside the single writer
//   - Busy timeout for handling locks
//   - An index on creation time for retention scans
//
// SQLite's transaction isolation is the only serialization point for
// conflicting writes; the service holds no shared mutable state outside
// the database.
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage(&storage.SQLiteConfig{
//	    Path:        "data/askboard.db",
//	    BusyTimeout: 5 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	q, err := store.Create(ctx, "When does the session start?")
package storage
