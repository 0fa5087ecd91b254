// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package certs

import "errors"

var (
	// ErrIssuance wraps every failure to generate or persist a certificate.
	// The TLS listener must not start when it is returned.
	ErrIssuance = errors.New("certificate issuance failed")

	// ErrInvalidValidity is returned when the validity window is empty or
	// negative.
	ErrInvalidValidity = errors.New("certificate validity window must be positive")

	// ErrNoCertificate is returned by [LoadCertificate] when the file holds
	// no CERTIFICATE PEM block.
	ErrNoCertificate = errors.New("no certificate found in PEM file")

	// ErrNoPrivateKey is returned by [LoadCertificate] when the file holds
	// no PRIVATE KEY PEM block.
	ErrNoPrivateKey = errors.New("no private key found in PEM file")
)
