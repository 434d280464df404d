// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the outcome of a wallet client call.
//
// The set of implementations is closed: [ResultError], [ResultItem],
// [ResultItemMap] and [ResultItems]. Callers switch on the concrete type.
type Result interface {
	isResult()
}

// RequestError is the error object returned by the wallet or the node.
// Code follows JSON-RPC / EIP-1193 numbering.
type RequestError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e RequestError) Error() string {
	return e.Message
}

// ResultError is a failed call.
type ResultError struct {
	Error RequestError
}

// ResultItem is a successful call that produced a scalar string.
type ResultItem struct {
	Value string
}

// ResultItemMap is a successful call that produced an object.
type ResultItemMap struct {
	Value map[string]any
}

// ResultItems is a successful call that produced a list.
type ResultItems struct {
	Value []any
}

func (ResultError) isResult()   {}
func (ResultItem) isResult()    {}
func (ResultItemMap) isResult() {}
func (ResultItems) isResult()   {}
