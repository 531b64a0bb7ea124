// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal-driven cancellation, and graceful shutdown of
// the listener.
package server
