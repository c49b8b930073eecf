// Package server wires and runs the application's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown for the
// listener serving the REST surface.
package server
