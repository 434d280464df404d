package config

import (
	"fmt"
	"time"
)

// ClientApp holds the DApp identity used by the client.
type ClientApp struct {
	// Name is the DApp name passed to the metadata provider.
	Name string
	// APIKey is the node provider key passed to the client provider.
	APIKey string
	// Version is the configured application version.
	Version string
}

// ClientAdapter holds settings used by the wallet client handle.
type ClientAdapter struct {
	// NodeURL is the JSON-RPC provider base URL.
	NodeURL string
	// Account optionally pins the selected wallet address.
	Account string
	// RequestTimeout bounds a single JSON-RPC round trip.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BalanceRefreshInterval enables periodic balance refresh when positive.
	BalanceRefreshInterval time.Duration
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// ServerConfig is the headless HTTP boundary configuration. It embeds the
// client view because the server drives the same coordinator.
type ServerConfig struct {
	ClientConfig
	Server Server
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		ClientConfig: *newClientConfig(cfg),
		Server:       cfg.Server,
	}
	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Name:    cfg.App.Name,
			APIKey:  cfg.App.APIKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			NodeURL:        cfg.Adapter.NodeURL,
			Account:        cfg.Adapter.Account,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			BalanceRefreshInterval: cfg.Workers.BalanceRefreshInterval,
		},
	}
}
