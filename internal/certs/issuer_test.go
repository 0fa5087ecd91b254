// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package certs

import (
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCert(t *testing.T, certPEM []byte) *x509.Certificate {
	t.Helper()

	block, _ := pem.Decode(certPEM)
	require.NotNil(t, block)
	require.Equal(t, pemTypeCertificate, block.Type)

	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	return cert
}

func TestEnsureCertificate_ExistingFileIsUntouched(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "garbage", content: []byte("definitely not a certificate")},
		{name: "empty file", content: []byte{}},
		{name: "binary", content: []byte{0x00, 0xff, 0x10, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server.pem")
			require.NoError(t, os.WriteFile(path, tt.content, 0o644))
			stat, err := os.Stat(path)
			require.NoError(t, err)

			require.NoError(t, EnsureCertificate(path))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)

			statAfter, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, stat.ModTime(), statAfter.ModTime())
		})
	}
}

func TestEnsureCertificate_SecondCallKeepsFirstCertificate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pem")

	require.NoError(t, EnsureCertificate(path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, EnsureCertificate(path, WithCommonName("other.example")))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnsureCertificate_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pem")

	require.NoError(t, EnsureCertificate(path))
	now := time.Now()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadCertificate(path)
	require.NoError(t, err)
	cert := parseCert(t, loaded.PublicCert)

	assert.Equal(t, DefaultCommonName, cert.Subject.CommonName)
	assert.Equal(t, cert.Subject.String(), cert.Issuer.String())
	assert.Equal(t, int64(0), cert.SerialNumber.Int64())
	assert.Equal(t, x509.SHA512WithRSA, cert.SignatureAlgorithm)
	assert.NoError(t, cert.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature))
	assert.True(t, cert.IsCA)
	assert.NotZero(t, cert.KeyUsage&x509.KeyUsageCertSign)
	assert.NoError(t, cert.CheckSignatureFrom(cert))

	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	require.True(t, ok)
	assert.Equal(t, KeyBits, pub.N.BitLen())

	assert.False(t, now.Before(cert.NotBefore), "notBefore must not be in the future")
	assert.False(t, now.After(cert.NotAfter), "notAfter must not be in the past")
	assert.Equal(t, DefaultValidity, cert.NotAfter.Sub(cert.NotBefore))
	assert.Equal(t, float64(10*365*24*60*60), cert.NotAfter.Sub(cert.NotBefore).Seconds())

	require.Len(t, cert.IPAddresses, 1)
	assert.True(t, cert.IPAddresses[0].Equal(net.ParseIP(DefaultCommonName)))
}

func TestEnsureCertificate_KeyPrecedesCertificate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pem")
	require.NoError(t, EnsureCertificate(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	first, rest := pem.Decode(data)
	require.NotNil(t, first)
	second, rest := pem.Decode(rest)
	require.NotNil(t, second)

	assert.Equal(t, pemTypePrivateKey, first.Type)
	assert.Equal(t, pemTypeCertificate, second.Type)
	assert.Empty(t, rest)

	// the combined file is directly usable as a TLS key pair
	_, err = tls.LoadX509KeyPair(path, path)
	assert.NoError(t, err)
}

func TestEnsureCertificate_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "server.pem")

	err := EnsureCertificate(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIssuance)
	assert.NoFileExists(t, path)
}

func TestIssue_Options(t *testing.T) {
	start := time.Date(2030, time.January, 2, 3, 4, 5, 600, time.UTC)

	cert, err := Issue(
		WithCommonName("hello.internal"),
		WithSerialNumber(42),
		WithNotBefore(start),
		WithValidity(48*time.Hour),
	)
	require.NoError(t, err)

	assert.Equal(t, "hello.internal", cert.CommonName)
	assert.Equal(t, int64(42), cert.SerialNumber)
	assert.Equal(t, start.Truncate(time.Second), cert.NotBefore)
	assert.Equal(t, 48*time.Hour, cert.Validity())

	parsed := parseCert(t, cert.PublicCert)
	assert.Equal(t, []string{"hello.internal"}, parsed.DNSNames)
	assert.Empty(t, parsed.IPAddresses)
	assert.Equal(t, int64(42), parsed.SerialNumber.Int64())
	assert.True(t, parsed.NotBefore.Equal(cert.NotBefore))
}

func TestIssue_UsesClockWhenNotBeforeUnset(t *testing.T) {
	fixed := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

	cert, err := Issue(withClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	assert.Equal(t, fixed, cert.NotBefore)
	assert.Equal(t, fixed.Add(DefaultValidity), cert.NotAfter)
}

func TestIssue_InvalidValidity(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Hour} {
		_, err := Issue(WithValidity(d))

		assert.ErrorIs(t, err, ErrIssuance)
		assert.ErrorIs(t, err, ErrInvalidValidity)
	}
}

func TestIssue_VerifiesWithItselfAsRoot(t *testing.T) {
	issued, err := Issue()
	require.NoError(t, err)
	cert := parseCert(t, issued.PublicCert)

	roots := x509.NewCertPool()
	require.True(t, roots.AppendCertsFromPEM(issued.PublicCert))

	_, err = cert.Verify(x509.VerifyOptions{
		Roots:     roots,
		DNSName:   DefaultCommonName,
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	})
	assert.NoError(t, err)
}
