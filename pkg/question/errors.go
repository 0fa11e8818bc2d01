package question

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a question that does
// not exist (or no longer exists after a retention pass).
var ErrNotFound = errors.New("question not found")

// ErrEmptyContent is returned when a question is created with empty content.
var ErrEmptyContent = errors.New("question content must not be empty")

// StorageError represents an error from a storage backend.
type StorageError struct {
	Backend   string // backend type ("sqlite", "memory")
	Operation string // operation that failed ("create", "list", "delete_before", ...)
	Cause     error  // underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Cause:     cause,
	}
}
