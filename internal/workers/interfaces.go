// Package workers runs background jobs next to the UI.
// It defines the Worker interface and a Workers aggregate that starts and
// stops a set of workers together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start returns immediately; the job runs until ctx is cancelled or Stop is
// called. Stop blocks until the job has exited and is safe to call on an
// idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// BalanceUpdater is the part of the event coordinator the refresher needs.
type BalanceUpdater interface {
	UpdateBalance()
	SelectedAddress() string
}
