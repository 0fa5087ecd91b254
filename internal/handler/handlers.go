// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler aggregates the transport handlers of the binaries.
package handler

import (
	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/handler/http"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/metrics"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the gateway handlers. statusLog receives the health
// check lines; m may be nil.
func NewHandlers(downstream adapter.DownstreamAdapter, statusLog *logger.Logger, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if downstream == nil || statusLog == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(downstream, statusLog, m, logger),
	}, nil
}

// NewEchoHandlers creates the handlers of the hello service.
func NewEchoHandlers(logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new echo handlers...")

	return &Handlers{
		HTTP: http.NewEchoHandler(logger),
	}
}
