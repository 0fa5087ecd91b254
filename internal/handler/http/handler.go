// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/metrics"
)

type Handler struct {
	downstream adapter.DownstreamAdapter

	// statusLog receives one line per health check.
	statusLog *logger.Logger
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewHandler creates the gateway handler. statusLog is usually a composite
// logger writing into the append-only log file; m may be nil.
func NewHandler(downstream adapter.DownstreamAdapter, statusLog *logger.Logger, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		downstream: downstream,
		statusLog:  statusLog,
		metrics:    m,
		logger:     logger,
	}
}

// NewEchoHandler creates the handler of the hello service.
func NewEchoHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("http echo handler created")
	return &Handler{
		logger: logger,
	}
}
