// Package server wires the question board together and owns the process
// lifecycle.
//
// # Lifecycle
//
// A server instance moves through a fixed sequence of states:
//
//	Uninitialized -> Resetting -> Scheduled -> ShuttingDown -> Terminated
//
// Resetting wipes the store unconditionally (restart == empty board) and is
// entered exactly once per process; a wipe failure aborts startup before
// the listener ever accepts a request. Scheduled means the daily retention
// job is armed and the HTTP listener is serving. There is no transition
// from ShuttingDown back to Scheduled.
package server
