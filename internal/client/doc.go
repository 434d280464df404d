// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive wallet client runtime.
//
// It wires the terminal UI, the event coordinator and the background
// balance refresher into a single process lifecycle.
package client
