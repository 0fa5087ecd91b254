// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package certs

import "time"

const (
	// DefaultCommonName is the subject (and issuer) of issued certificates.
	DefaultCommonName = "127.0.0.1"

	// DefaultValidity is ten 365-day years.
	DefaultValidity = 10 * 365 * 24 * time.Hour

	// KeyBits is the fixed RSA modulus size.
	KeyBits = 2048
)

type options struct {
	commonName   string
	serialNumber int64
	notBefore    time.Time
	validity     time.Duration
	now          func() time.Time
}

// Option customizes certificate issuance.
type Option func(*options)

// WithCommonName sets the subject and issuer common name.
func WithCommonName(cn string) Option {
	return func(o *options) {
		o.commonName = cn
	}
}

// WithSerialNumber sets the certificate serial number.
func WithSerialNumber(serial int64) Option {
	return func(o *options) {
		o.serialNumber = serial
	}
}

// WithNotBefore sets the start of the validity window. Defaults to now.
func WithNotBefore(t time.Time) Option {
	return func(o *options) {
		o.notBefore = t
	}
}

// WithValidity sets the length of the validity window.
func WithValidity(d time.Duration) Option {
	return func(o *options) {
		o.validity = d
	}
}

func withClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts ...Option) options {
	o := options{
		commonName: DefaultCommonName,
		validity:   DefaultValidity,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.notBefore.IsZero() {
		o.notBefore = o.now()
	}
	// X.509 time fields have second precision
	o.notBefore = o.notBefore.UTC().Truncate(time.Second)

	return o
}
