package question

import "time"

// Question is a single board entry submitted by a client.
type Question struct {
	// ID is a monotonically increasing identifier assigned by the store
	// on creation. Immutable.
	ID int64 `json:"id"`

	// Content is the submitted question text. Non-empty, immutable.
	Content string `json:"content"`

	// IsResolved marks the question as answered on the display surface.
	// Defaults to false at creation and may be toggled any number of times.
	IsResolved bool `json:"is_resolved"`

	// CreatedAt is the creation instant in UTC, assigned by the store.
	// Immutable. CreatedAt is non-decreasing in ID order.
	CreatedAt time.Time `json:"created_at"`
}
