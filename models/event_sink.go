// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrUnknownEventSink is returned by [ParseEventSink] for names that do not
// match any [EventSink].
var ErrUnknownEventSink = errors.New("unknown event")

// EventSink is a single user intent sent from the UI to the coordinator.
type EventSink int

const (
	// Connect opens a wallet session.
	Connect EventSink = iota
	// GetBalance queries the balance of the selected address.
	GetBalance
	// Disconnect closes the wallet session.
	Disconnect
)

var eventSinkNames = map[EventSink]string{
	Connect:    "connect",
	GetBalance: "get-balance",
	Disconnect: "disconnect",
}

// String returns the wire name of the event, as used by the HTTP boundary.
func (e EventSink) String() string {
	if name, ok := eventSinkNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEventSink maps a wire name back to its [EventSink].
func ParseEventSink(name string) (EventSink, error) {
	for event, eventName := range eventSinkNames {
		if eventName == name {
			return event, nil
		}
	}
	return 0, ErrUnknownEventSink
}
