// Package types defines the wire-level request and response shapes shared
// by the HTTP handlers and middleware.
package types

import (
	"encoding/json"
	"net/http"
)

// Error type identifiers surfaced to clients.
const (
	TypeInvalidRequest = "invalid_request_error"
	TypeNotFound       = "not_found_error"
	TypeServerError    = "server_error"
)

// ErrorDetail describes a single API error.
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse is the envelope for all API errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewServerError creates an ErrorResponse for an internal failure.
func NewServerError(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Message: message, Type: TypeServerError}}
}

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Content string `json:"content"`
}

// UpdateQuestionRequest is the body of PATCH /questions/{id}.
type UpdateQuestionRequest struct {
	IsResolved *bool `json:"is_resolved"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors past this point cannot be reported to the client.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error response with the given status code.
func WriteError(w http.ResponseWriter, status int, errType, message string) {
	WriteJSON(w, status, ErrorResponse{Error: ErrorDetail{Message: message, Type: errType}})
}
