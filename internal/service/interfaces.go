// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the event coordinator: it turns user intents into
// wallet client calls and folds the results into UI state and messages.
package service

import (
	"github.com/MKhiriev/go-wallet-dapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/event_coordinator_mock.go -package=mock

// EventCoordinator receives UI events, calls the wallet client and publishes
// the outcome as [models.UIState] snapshots and [models.UIEvent] messages.
type EventCoordinator interface {
	// Handle launches an independent task for event and returns immediately.
	// Tasks are not ordered; the last one to finish wins the state write.
	Handle(event models.EventSink)

	// UpdateBalance requests a balance refresh when a wallet address is
	// selected, otherwise it only reports that the wallet is not connected.
	// It returns immediately.
	UpdateBalance()

	// State returns the latest UI state snapshot.
	State() models.UIState

	// SelectedAddress returns the address of the open wallet session, or an
	// empty string.
	SelectedAddress() string

	// SubscribeState returns a channel that immediately yields the current
	// snapshot and then every later one. Slow readers only see the newest
	// snapshot. The returned func stops the subscription and closes the
	// channel.
	SubscribeState() (<-chan models.UIState, func())

	// SubscribeEvents returns a channel of messages emitted after the call.
	// Nothing is replayed. The returned func stops the subscription; the
	// channel is not closed.
	SubscribeEvents() (<-chan models.UIEvent, func())

	// Wait blocks until every task launched so far has finished.
	Wait()
}

// EventRecorder receives one observation per processed event.
type EventRecorder interface {
	RecordEvent(event string, outcome string)
}
