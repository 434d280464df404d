// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DappMetadata describes the DApp to the wallet when a session is opened.
// It is built once at startup and shared read-only afterwards.
type DappMetadata struct {
	// Name is the human-readable application name.
	Name string `json:"name"`

	// URL is the public address of the DApp, "https://{name}.com".
	URL string `json:"url"`

	// IconURL points to the icon shown by the wallet during connection.
	IconURL string `json:"iconUrl"`
}
