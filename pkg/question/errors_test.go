package question

import (
	"errors"
	"strings"
	"testing"
)

// TestStorageError tests formatting and unwrapping.
func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("sqlite", "create", cause)

	msg := err.Error()
	for _, want := range []string{"sqlite", "create", "disk full"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

// TestSentinelErrors tests that sentinels survive wrapping.
func TestSentinelErrors(t *testing.T) {
	wrapped := NewStorageError("memory", "set_resolved", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped ErrNotFound not matched by errors.Is")
	}
}
