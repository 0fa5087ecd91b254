// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectivity is returned when no HTTP response was received:
	// DNS failure, refused connection, TLS failure or timeout.
	ErrConnectivity = errors.New("downstream unreachable")

	// ErrShapeMismatch is returned when a 200 response body cannot be
	// decoded into the expected shape.
	ErrShapeMismatch = errors.New("unexpected downstream response body")

	// ErrInvalidCAFile is returned by the constructor when the configured
	// hello CA file cannot be read or holds no certificate.
	ErrInvalidCAFile = errors.New("invalid hello CA file")
)

// DownstreamError reports a downstream response whose status code is not the
// expected one. URL is the exact URL of the request.
type DownstreamError struct {
	URL        string
	StatusCode int
}

// Error renders the message surfaced to gateway clients, for example
// "Got 503 from https://wttr.in/London?format=%C+%t".
func (e *DownstreamError) Error() string {
	return fmt.Sprintf("Got %d from %s", e.StatusCode, e.URL)
}
