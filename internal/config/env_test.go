// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME":    "wallet-demo",
		"APP_API_KEY": "infura-key",
		"APP_VERSION": "1.0.0",

		"ADAPTER_NODE_URL":        "https://sepolia.infura.io",
		"ADAPTER_ACCOUNT":         "0x52908400098527886E0F7030069857D2E4169EE7",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"WORKERS_BALANCE_REFRESH_INTERVAL": "1m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "wallet-demo", cfg.App.Name)
	assert.Equal(t, "infura-key", cfg.App.APIKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "https://sepolia.infura.io", cfg.Adapter.NodeURL)
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", cfg.Adapter.Account)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, time.Minute, cfg.Workers.BalanceRefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_API_KEY":    "infura-key",
		"SERVER_ADDRESS": "localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "infura-key", cfg.App.APIKey)
	assert.Empty(t, cfg.App.Name)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_BALANCE_REFRESH_INTERVAL": "every_minute",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_NAME",
		"APP_API_KEY",
		"APP_VERSION",

		"ADAPTER_NODE_URL",
		"ADAPTER_ACCOUNT",
		"ADAPTER_REQUEST_TIMEOUT",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"WORKERS_BALANCE_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
		_ = os.Unsetenv(k)
	}
}
