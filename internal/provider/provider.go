// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider builds the application-wide singletons: the DApp metadata
// presented to the wallet and the single long-lived wallet client handle.
package provider

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-dapp/internal/adapter"
	"github.com/MKhiriev/go-wallet-dapp/internal/config"
	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/models"
)

// DappIconURL is the icon shown by the wallet next to the DApp name.
const DappIconURL = "https://cdn.sstatic.net/Sites/stackoverflow/Img/apple-touch-icon.png"

// ProvideMetadata returns the DApp identity for appName. The URL is derived
// as "https://{appName}.com".
func ProvideMetadata(appName string) models.DappMetadata {
	return models.DappMetadata{
		Name:    appName,
		URL:     "https://" + appName + ".com",
		IconURL: DappIconURL,
	}
}

// ProvideClient constructs the wallet client handle bound to metadata and
// apiKey. The handle is meant to be created once per process and shared.
func ProvideClient(
	metadata models.DappMetadata,
	apiKey string,
	adapterCfg config.ClientAdapter,
	log *logger.Logger,
	opts ...adapter.Option,
) (adapter.WalletClient, error) {
	client, err := adapter.NewJSONRPCWalletClient(metadata, apiKey, adapterCfg, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("provide wallet client: %w", err)
	}
	return client, nil
}
