// Package question defines the core data model for the Askboard question
// board: the Question record and the error types shared by the storage
// backends and the retention engine.
//
// # Lifecycle
//
// A question is created by a client submission, optionally marked resolved
// any number of times, and removed in bulk by the retention engine once its
// creation time falls before the current day's cutoff. Every process restart
// wipes the board entirely, regardless of record age.
//
// Resolved status is orthogonal to retention: a resolved question is pruned
// exactly like an unresolved one once it is stale.
package question
