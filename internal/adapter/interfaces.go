// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the clients of the gateway's downstream
// dependencies: the weather text service, the IP lookup service and the TLS
// hello service.
//
// The primary abstraction is [DownstreamAdapter], which decouples the HTTP
// router from the outbound protocol. Every operation issues exactly one GET
// request and never retries or follows redirects.
//
// A response with a status other than 200 is reported as a
// [*DownstreamError] carrying the status code and the exact URL that was
// called. Transport failures wrap [ErrConnectivity] and undecodable bodies
// wrap [ErrShapeMismatch], so callers can tell the three apart with
// [errors.As] and [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-api-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/downstream_adapter_mock.go -package=mock

// DownstreamAdapter defines communication with the three downstream
// dependencies of the gateway.
type DownstreamAdapter interface {
	// FetchWeather returns the weather text for location exactly as the
	// weather service produced it.
	FetchWeather(ctx context.Context, location string) (string, error)

	// FetchMyIP returns the JSON document of the IP lookup service. The body
	// is passed through unchanged but must be valid JSON.
	FetchMyIP(ctx context.Context) (json.RawMessage, error)

	// FetchHello calls the hello service with whatever as the path and
	// returns the decoded greeting.
	FetchHello(ctx context.Context, whatever string) (models.Hello, error)
}
