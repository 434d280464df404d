// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrStreamingUnsupported is reported when the response writer cannot flush,
// so server-sent events cannot be delivered.
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// errorResponse is the JSON body of every 4xx/5xx answer.
type errorResponse struct {
	Error string `json:"error"`
}
