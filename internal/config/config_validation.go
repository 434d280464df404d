// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Role-specific requirements live on the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if strings.TrimSpace(cfg.App.Name) == "" {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Adapter.NodeURL) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.BalanceRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.ClientConfig.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
