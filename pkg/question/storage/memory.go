package storage

import (
	"context"
	"sync"
	"time"

	"askboard-hq/askboard/pkg/question"
)

// MemoryStorage implements the Storage interface using an in-memory slice.
// This implementation is intended for testing only and should not be used
// in production.
type MemoryStorage struct {
	mu        sync.RWMutex
	questions []*question.Question
	nextID    int64

	// NowFunc supplies creation timestamps. Tests override it to create
	// records on either side of a day boundary. Defaults to time.Now.
	NowFunc func() time.Time
}

// NewMemoryStorage creates a new in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		nextID:  1,
		NowFunc: time.Now,
	}
}

// Create persists a new question in memory.
func (s *MemoryStorage) Create(ctx context.Context, content string) (*question.Question, error) {
	if content == "" {
		return nil, question.ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q := &question.Question{
		ID:        s.nextID,
		Content:   content,
		CreatedAt: s.NowFunc().UTC(),
	}
	s.nextID++
	s.questions = append(s.questions, q)

	qCopy := *q
	return &qCopy, nil
}

// List returns all questions ordered by creation time descending.
func (s *MemoryStorage) List(ctx context.Context) ([]*question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*question.Question, 0, len(s.questions))
	// Records are appended in creation order, so walking backwards yields
	// newest first.
	for i := len(s.questions) - 1; i >= 0; i-- {
		qCopy := *s.questions[i]
		results = append(results, &qCopy)
	}

	return results, nil
}

// SetResolved updates the resolved flag and returns the updated record.
func (s *MemoryStorage) SetResolved(ctx context.Context, id int64, resolved bool) (*question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.questions {
		if q.ID == id {
			q.IsResolved = resolved
			qCopy := *q
			return &qCopy, nil
		}
	}

	return nil, question.ErrNotFound
}

// DeleteBefore removes every question created strictly before cutoff.
func (s *MemoryStorage) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*question.Question
	var deleted int64
	for _, q := range s.questions {
		if q.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, q)
	}
	s.questions = kept

	return deleted, nil
}

// DeleteAll removes every question regardless of age.
func (s *MemoryStorage) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := int64(len(s.questions))
	s.questions = nil

	return deleted, nil
}

// Count returns the number of stored questions.
func (s *MemoryStorage) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.questions)), nil
}

// Close is a no-op for the memory backend.
func (s *MemoryStorage) Close() error {
	return nil
}
