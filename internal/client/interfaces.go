// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is a front-end that blocks until the user leaves or ctx is done.
type UI interface {
	Run(ctx context.Context) error
}

// Workers is a set of background jobs tied to the UI lifetime.
type Workers interface {
	Start(ctx context.Context)
	Stop()
}

// TaskWaiter blocks until outstanding coordinator tasks finish.
type TaskWaiter interface {
	Wait()
}
