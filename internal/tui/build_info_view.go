// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-wallet-dapp/models"
)

func renderBuildInfoWindow(appName string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("Application", appName))
	b.WriteString("\n")
	b.WriteString(field("Version", info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(field("Date", info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(field("Commit", info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}
