// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrLoadingCertificate is returned by NewTLSServer when the key pair
	// file cannot be loaded.
	ErrLoadingCertificate = errors.New("error loading TLS key pair")
)
