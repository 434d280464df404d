// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source.
const (
	DefaultAppName        = "go-wallet-dapp"
	DefaultNodeURL        = "https://mainnet.infura.io"
	DefaultRequestTimeout = 15 * time.Second
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the DApp identity and the wallet API key.
	App App `envPrefix:"APP_"`

	// Adapter holds the wallet node endpoint and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address of the headless HTTP boundary.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the DApp name; the DApp URL is derived from it.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// APIKey is the node provider key (Infura project id). Required.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the wallet client handle.
type Adapter struct {
	// NodeURL is the base URL of the JSON-RPC node provider
	// (e.g. "https://mainnet.infura.io"). The API key is appended as
	// "/v3/{key}".
	// Env: ADAPTER_NODE_URL
	NodeURL string `env:"NODE_URL"`

	// Account pins the wallet address selected on connect. When empty the
	// first account reported by eth_accounts is used.
	// Env: ADAPTER_ACCOUNT
	Account string `env:"ACCOUNT"`

	// RequestTimeout bounds a single JSON-RPC round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the headless HTTP boundary.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and the graceful shutdown.
	// Responses are not bounded so message streams stay open.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BalanceRefreshInterval enables periodic balance refresh when positive.
	// Env: WORKERS_BALANCE_REFRESH_INTERVAL
	BalanceRefreshInterval time.Duration `env:"BALANCE_REFRESH_INTERVAL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Adapter: Adapter{
			NodeURL:        DefaultNodeURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
