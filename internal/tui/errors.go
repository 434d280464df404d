// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrNoCoordinator is returned by [New] without an event coordinator.
var ErrNoCoordinator = errors.New("event coordinator is required")

// ErrNothingToCopy is shown when the copied value is empty.
var ErrNothingToCopy = errors.New("nothing to copy")
