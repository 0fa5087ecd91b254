// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Certificate describes a self-signed key/certificate pair issued for the
// TLS echo service.
//
// Issuer and subject are always the same CommonName and NotBefore is
// strictly before NotAfter. Both key and certificate are kept in PEM form,
// exactly as they are persisted on disk.
type Certificate struct {
	CommonName   string    `json:"common_name"`
	SerialNumber int64     `json:"serial_number"`
	NotBefore    time.Time `json:"not_before"`
	NotAfter     time.Time `json:"not_after"`

	// PrivateKey is the PEM encoded, unencrypted PKCS#8 RSA private key.
	PrivateKey []byte `json:"-"`

	// PublicCert is the PEM encoded X.509 certificate.
	PublicCert []byte `json:"-"`
}

// Validity returns the length of the certificate validity window.
func (c Certificate) Validity() time.Duration {
	return c.NotAfter.Sub(c.NotBefore)
}
