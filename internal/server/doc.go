// Package server runs the headless HTTP boundary.
//
// It owns the lifecycle of the HTTP listener and the background workers:
// startup, signal handling and graceful shutdown, after which in-flight
// coordinator tasks are drained.
package server
