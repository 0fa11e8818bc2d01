package storage

import (
	"context"
	"time"

	"askboard-hq/askboard/pkg/question"
)

// Storage defines the persistence contract for question records.
//
// The store is the single source of truth: callers never cache record state
// across calls. Implementations must serialize conflicting writes internally
// (transaction isolation, single-writer pool) rather than relying on callers
// to lock.
type Storage interface {
	// Create persists a new question with the given content, assigning its
	// ID and creation time. Returns question.ErrEmptyContent if content is
	// empty.
	Create(ctx context.Context, content string) (*question.Question, error)

	// List returns all surviving questions ordered by creation time
	// descending (newest first).
	List(ctx context.Context) ([]*question.Question, error)

	// SetResolved updates the resolved flag of the question with the given
	// id and returns the updated record. Returns question.ErrNotFound if no
	// such question exists.
	SetResolved(ctx context.Context, id int64, resolved bool) (*question.Question, error)

	// DeleteBefore removes every question created strictly before cutoff
	// and returns the number removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteAll removes every question regardless of age and returns the
	// number removed. Used by the startup wipe.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of stored questions.
	Count(ctx context.Context) (int64, error)

	// Close releases resources held by the backend.
	Close() error
}
