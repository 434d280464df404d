package server

import "context"

// Server defines the lifecycle contract of the headless boundary.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Workers is a set of background jobs started and stopped with the server.
type Workers interface {
	Start(ctx context.Context)
	Stop()
}

// TaskWaiter blocks until outstanding background tasks finish.
type TaskWaiter interface {
	Wait()
}
