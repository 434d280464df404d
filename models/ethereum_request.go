// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// EthereumMethod is a JSON-RPC method name understood by the wallet node.
type EthereumMethod string

const (
	EthGetBalance      EthereumMethod = "eth_getBalance"
	EthChainID         EthereumMethod = "eth_chainId"
	EthAccounts        EthereumMethod = "eth_accounts"
	EthRequestAccounts EthereumMethod = "eth_requestAccounts"
)

// BlockTagLatest selects the most recent ledger state known to the node.
const BlockTagLatest = "latest"

// EthereumRequest is a single wallet call. ID is filled in by the client
// when left empty.
type EthereumRequest struct {
	ID     string
	Method EthereumMethod
	Params []any
}

// RPCRequest is the JSON-RPC 2.0 envelope sent to the node.
type RPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// RPCResponse is the JSON-RPC 2.0 envelope received from the node. Result is
// kept raw so the client can tell a string from an object or a list.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RequestError   `json:"error,omitempty"`
}
