// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the transport servers of the binaries.
//
// It provides the lifecycle of the plain HTTP gateway listener and of the
// TLS listener of the hello service: startup, signal handling and graceful
// shutdown.
package server
