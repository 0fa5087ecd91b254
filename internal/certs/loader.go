// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package certs

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-gateway/models"
)

// LoadCertificate reads a file produced by [EnsureCertificate] and returns
// its contents. Only the first PRIVATE KEY and the first CERTIFICATE block
// are considered; other blocks are skipped.
func LoadCertificate(path string) (models.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("error reading certificate file: %w", err)
	}

	var keyBlock, certBlock *pem.Block
	for rest := data; len(rest) > 0; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}

		switch block.Type {
		case pemTypePrivateKey:
			if keyBlock == nil {
				keyBlock = block
			}
		case pemTypeCertificate:
			if certBlock == nil {
				certBlock = block
			}
		}
	}

	if certBlock == nil {
		return models.Certificate{}, ErrNoCertificate
	}
	if keyBlock == nil {
		return models.Certificate{}, ErrNoPrivateKey
	}

	parsed, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("error parsing certificate: %w", err)
	}

	return models.Certificate{
		CommonName:   parsed.Subject.CommonName,
		SerialNumber: parsed.SerialNumber.Int64(),
		NotBefore:    parsed.NotBefore,
		NotAfter:     parsed.NotAfter,
		PrivateKey:   pem.EncodeToMemory(keyBlock),
		PublicCert:   pem.EncodeToMemory(certBlock),
	}, nil
}
