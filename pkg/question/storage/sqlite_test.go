package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"askboard-hq/askboard/pkg/question"
)

func newTestSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	config := DefaultSQLiteConfig()
	config.Path = filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() failed: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// TestSQLiteStorage_Pragmas tests that WAL mode, the busy timeout, and the
// synchronous level are actually in effect on the connection.
func TestSQLiteStorage_Pragmas(t *testing.T) {
	config := DefaultSQLiteConfig()
	config.Path = filepath.Join(t.TempDir(), "pragmas.db")
	config.BusyTimeout = 2 * time.Second

	store, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() failed: %v", err)
	}
	defer store.Close()

	var journalMode string
	if err := store.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("PRAGMA journal_mode query failed: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int64
	if err := store.db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatalf("PRAGMA busy_timeout query failed: %v", err)
	}
	if busyTimeout != 2000 {
		t.Errorf("busy_timeout = %d, want 2000", busyTimeout)
	}

	var synchronous int64
	if err := store.db.QueryRow("PRAGMA synchronous").Scan(&synchronous); err != nil {
		t.Fatalf("PRAGMA synchronous query failed: %v", err)
	}
	if synchronous != 1 { // NORMAL
		t.Errorf("synchronous = %d, want 1 (NORMAL)", synchronous)
	}
}

// TestSQLiteStorage_CreateAndList tests the basic round-trip.
func TestSQLiteStorage_CreateAndList(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	q, err := store.Create(ctx, "what is the roadmap for next year?")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if q.ID == 0 {
		t.Error("Expected a nonzero ID")
	}
	if q.Content != "what is the roadmap for next year?" {
		t.Errorf("Unexpected content: %q", q.Content)
	}
	if q.IsResolved {
		t.Error("New question should not be resolved")
	}
	if q.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if q.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt should be UTC, got %v", q.CreatedAt.Location())
	}

	questions, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].ID != q.ID {
		t.Errorf("Expected ID %d, got %d", q.ID, questions[0].ID)
	}
}

// TestSQLiteStorage_ListOrder tests newest-first ordering.
func TestSQLiteStorage_ListOrder(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Minute)
		store.now = func() time.Time { return at }
		if _, err := store.Create(ctx, content); err != nil {
			t.Fatalf("Create(%q) failed: %v", content, err)
		}
	}

	questions, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(questions))
	}

	want := []string{"third", "second", "first"}
	for i, q := range questions {
		if q.Content != want[i] {
			t.Errorf("questions[%d].Content = %q, want %q", i, q.Content, want[i])
		}
	}
}

// TestSQLiteStorage_ListSameInstant tests tie-breaking by ID when two
// questions share a creation timestamp.
func TestSQLiteStorage_ListSameInstant(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	first, err := store.Create(ctx, "first")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	second, err := store.Create(ctx, "second")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	questions, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if questions[0].ID != second.ID || questions[1].ID != first.ID {
		t.Errorf("Expected newest ID first, got [%d, %d]", questions[0].ID, questions[1].ID)
	}
}

// TestSQLiteStorage_SetResolved tests the resolve flag update.
func TestSQLiteStorage_SetResolved(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	q, err := store.Create(ctx, "can we get the slides afterwards?")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	updated, err := store.SetResolved(ctx, q.ID, true)
	if err != nil {
		t.Fatalf("SetResolved() failed: %v", err)
	}
	if !updated.IsResolved {
		t.Error("Expected question to be resolved")
	}
	if updated.ID != q.ID || updated.Content != q.Content {
		t.Error("SetResolved changed fields other than the flag")
	}

	// Back to unresolved
	updated, err = store.SetResolved(ctx, q.ID, false)
	if err != nil {
		t.Fatalf("SetResolved(false) failed: %v", err)
	}
	if updated.IsResolved {
		t.Error("Expected question to be unresolved again")
	}
}

// TestSQLiteStorage_SetResolvedNotFound tests the missing-ID path.
func TestSQLiteStorage_SetResolvedNotFound(t *testing.T) {
	store := newTestSQLiteStorage(t)

	_, err := store.SetResolved(context.Background(), 999999, true)
	if !errors.Is(err, question.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestSQLiteStorage_DeleteBefore tests cutoff-based deletion.
func TestSQLiteStorage_DeleteBefore(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	cutoff := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	times := []time.Time{
		cutoff.Add(-time.Hour),       // expired
		cutoff.Add(-time.Nanosecond), // expired, boundary
		cutoff,                       // survives, boundary
		cutoff.Add(time.Hour),        // survives
	}
	for i, at := range times {
		at := at
		store.now = func() time.Time { return at }
		if _, err := store.Create(ctx, "q"); err != nil {
			t.Fatalf("Create(#%d) failed: %v", i, err)
		}
	}

	deleted, err := store.DeleteBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("DeleteBefore() failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 deleted questions, got %d", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 remaining questions, got %d", count)
	}
}

// TestSQLiteStorage_DeleteAll tests the full wipe.
func TestSQLiteStorage_DeleteAll(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, "q"); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}

	deleted, err := store.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll() failed: %v", err)
	}
	if deleted != 5 {
		t.Errorf("Expected 5 deleted questions, got %d", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty board, got %d questions", count)
	}
}

// TestSQLiteStorage_Reset tests the drop-and-recreate path, including ID
// sequence reset.
func TestSQLiteStorage_Reset(t *testing.T) {
	store := newTestSQLiteStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, "q"); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty board after Reset, got %d questions", count)
	}

	q, err := store.Create(ctx, "fresh")
	if err != nil {
		t.Fatalf("Create() after Reset failed: %v", err)
	}
	if q.ID != 1 {
		t.Errorf("Expected ID sequence to restart at 1, got %d", q.ID)
	}
}

// TestSQLiteStorage_PersistsAcrossOpen tests that a reopened database sees
// rows written before Close.
func TestSQLiteStorage_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	config := DefaultSQLiteConfig()
	config.Path = path

	store, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() failed: %v", err)
	}
	if _, err := store.Create(ctx, "survives restart"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened, err := NewSQLiteStorage(config)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 persisted question, got %d", count)
	}
}
