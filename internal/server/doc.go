// Package server wires and runs the relay's transport server.
//
// It owns the HTTP listener lifecycle: startup, OS signal handling, and
// graceful shutdown.
package server
