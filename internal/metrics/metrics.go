// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the gateway.
//
// Every [Metrics] value owns a private registry, so independent instances
// (one per test, for example) never collide on collector registration.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of a downstream call.
const (
	OutcomeSuccess      = "success"
	OutcomeStatus       = "status"
	OutcomeConnectivity = "connectivity"
	OutcomeShape        = "shape"
)

// Metrics holds all Prometheus metrics of the gateway.
type Metrics struct {
	// Downstream call metrics
	downstreamCallsTotal   *prometheus.CounterVec
	downstreamCallDuration *prometheus.HistogramVec

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates a metrics instance with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		downstreamCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_downstream_calls_total",
				Help: "Total number of downstream calls by downstream and outcome",
			},
			[]string{"downstream", "outcome", "status_code"},
		),

		downstreamCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_downstream_call_duration_seconds",
				Help:    "Downstream call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"downstream"},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.downstreamCallsTotal,
		m.downstreamCallDuration,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	return m
}

// RecordDownstreamCall records a single outbound call. statusCode is zero
// when no response was received.
func (m *Metrics) RecordDownstreamCall(downstream, outcome string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}

	code := ""
	if statusCode != 0 {
		code = strconv.Itoa(statusCode)
	}

	m.downstreamCallsTotal.WithLabelValues(downstream, outcome, code).Inc()
	m.downstreamCallDuration.WithLabelValues(downstream).Observe(duration.Seconds())
}

// RecordHTTPRequest records a served inbound request. route is the matched
// route pattern, never the raw path.
func (m *Metrics) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}

	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the metrics in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
