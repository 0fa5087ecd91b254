// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package certs

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"

	"github.com/MKhiriev/go-api-gateway/models"
)

const (
	pemTypePrivateKey  = "PRIVATE KEY"
	pemTypeCertificate = "CERTIFICATE"
)

// EnsureCertificate makes sure a key/certificate file exists at path.
//
// If anything already exists at path the call returns nil immediately and
// the file is neither read nor modified. Otherwise a new certificate is
// issued with [Issue] and written to path with mode 0600, private key
// first. All failures wrap [ErrIssuance].
func EnsureCertificate(path string, opts ...Option) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cert, err := Issue(opts...)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	out.Write(cert.PrivateKey)
	out.Write(cert.PublicCert)

	if err = os.WriteFile(path, out.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: error writing %q: %v", ErrIssuance, path, err)
	}

	return nil
}

// Issue generates an RSA-2048 key pair and a self-signed X.509 certificate
// whose subject and issuer are both the configured common name, signed with
// SHA-512. The certificate is its own CA, so it can be handed to clients as
// a trust root. Nothing is written to disk.
func Issue(opts ...Option) (models.Certificate, error) {
	o := newOptions(opts...)
	if o.validity <= 0 {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrIssuance, ErrInvalidValidity)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("%w: error generating private key: %v", ErrIssuance, err)
	}

	subject := pkix.Name{CommonName: o.commonName}
	template := x509.Certificate{
		SerialNumber:          big.NewInt(o.serialNumber),
		Subject:               subject,
		Issuer:                subject,
		NotBefore:             o.notBefore,
		NotAfter:              o.notBefore.Add(o.validity),
		SignatureAlgorithm:    x509.SHA512WithRSA,
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		// self-signed roots sign themselves
		IsCA: true,
	}

	// Go clients verify hostnames against SANs only
	if ip := net.ParseIP(o.commonName); ip != nil {
		template.IPAddresses = []net.IP{ip}
	} else if o.commonName != "" {
		template.DNSNames = []string{o.commonName}
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("%w: error creating certificate: %v", ErrIssuance, err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("%w: error marshaling private key: %v", ErrIssuance, err)
	}

	return models.Certificate{
		CommonName:   o.commonName,
		SerialNumber: o.serialNumber,
		NotBefore:    template.NotBefore,
		NotAfter:     template.NotAfter,
		PrivateKey:   pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: keyDER}),
		PublicCert:   pem.EncodeToMemory(&pem.Block{Type: pemTypeCertificate, Bytes: certDER}),
	}, nil
}
