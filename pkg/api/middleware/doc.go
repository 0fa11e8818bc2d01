// Package middleware provides the HTTP middleware chain for the Askboard
// transport layer.
//
// # Middleware Chain
//
// The server composes middleware outermost-first:
//
//	recovery -> request ID -> logging -> metrics -> CORS -> retention guard -> mux
//
// # Retention Guard
//
// The retention guard is the load-bearing piece: it invokes a retention pass
// before dispatching any /questions operation, so the prune-before-CRUD
// ordering is enforced structurally in the chain rather than repeated inside
// each handler. A request therefore never observes a record made stale by
// the same "now" it computed.
//
// # CORS
//
// The CORS middleware enforces a fixed allow-list of origins; all methods
// and headers are permitted for allowed origins. The allow-list can be
// swapped at runtime by the config watcher.
package middleware
