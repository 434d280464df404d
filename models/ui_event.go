// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UIEvent is a one-shot notification for the UI. It is delivered to the
// subscribers present at emission time and never replayed.
//
// The set of implementations is closed; [Message] is the only one.
type UIEvent interface {
	isUIEvent()
}

// Message is a user-facing text notification.
type Message struct {
	Text string `json:"text"`
}

func (Message) isUIEvent() {}
