// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BalanceNotAvailable is stored in [UIState.Balance] when the wallet answers a
// balance query with an unexpected result shape.
const BalanceNotAvailable = "NA"

// UIState is the snapshot of everything the UI renders.
//
// Snapshots are values: every transition produces a new UIState, so a copy
// held by a subscriber never changes underneath it.
type UIState struct {
	// IsConnecting reports that the last connect attempt did not fail.
	IsConnecting bool `json:"isConnecting"`

	// Balance is empty, [BalanceNotAvailable], or "<decimal> ETH".
	Balance string `json:"balance"`
}
