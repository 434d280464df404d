// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the wallet client handle used by the event
// coordinator.
//
// The primary abstraction is [WalletClient], which decouples the coordinator
// from the wallet transport. The package ships a JSON-RPC over HTTP
// implementation ([NewJSONRPCWalletClient]) that talks to an Infura-style
// node endpoint.
//
// Every outcome, including transport failures, is reported as a
// [models.Result]; callers never receive a Go error from a wallet call.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_client_mock.go -package=mock

// WalletClient is the single long-lived handle to the wallet. Its session
// state (selected address) is owned by the implementation; callers only
// invoke operations.
type WalletClient interface {
	// Connect opens a session and selects an account. Success carries the
	// list of available accounts as [models.ResultItems].
	Connect(ctx context.Context) models.Result

	// SendRequest forwards a single JSON-RPC call and maps the response
	// onto a [models.Result] shape.
	SendRequest(ctx context.Context, req models.EthereumRequest) models.Result

	// Disconnect clears the session. With force set, pooled connections to
	// the node are dropped as well.
	Disconnect(force bool)

	// SelectedAddress returns the EIP-55 form of the selected account, or
	// an empty string when no session is open.
	SelectedAddress() string
}

// RequestObserver receives one observation per node round trip.
type RequestObserver interface {
	ObserveRequest(method string, outcome string, duration time.Duration)
}
