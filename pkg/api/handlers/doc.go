// Package handlers provides HTTP request handlers for the question board.
//
// Each handler parses and validates the request, performs the storage
// operation, and writes a JSON representation. Retention is not a handler
// concern: the retention guard middleware has already run by the time a
// handler executes.
//
// # Error Handling
//
// All errors use a single envelope:
//
//	{
//	  "error": {
//	    "message": "question not found",
//	    "type": "not_found_error"
//	  }
//	}
//
// Validation failures are rejected with 400 before reaching storage,
// unknown ids surface as 404, storage failures as 500.
package handlers
