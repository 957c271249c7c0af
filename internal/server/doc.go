// Package server wires and runs the HTTP transport together with the
// application's background workers.
//
// It owns the lifecycle: startup, signal handling, and graceful shutdown
// of the listener once the run context ends.
package server
