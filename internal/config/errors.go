// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid gateway listener settings
	// (for example, an empty address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDownstreamConfigs indicates a downstream base URL that is not
	// an absolute http(s) URL, or a negative timeout.
	ErrInvalidDownstreamConfigs = errors.New("invalid downstream configuration")
	// ErrInvalidHelloConfigs indicates invalid hello service settings.
	ErrInvalidHelloConfigs = errors.New("invalid hello configuration")
	// ErrInvalidLogConfigs indicates an empty log file path or logger name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
