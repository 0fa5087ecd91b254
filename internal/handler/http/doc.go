// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the gateway and of the
// hello service.
//
// [Handler.Init] wires the gateway routes: the health check, the versioned
// /v1 surface backed by a [adapter.DownstreamAdapter] and the Prometheus
// endpoint. [Handler.InitEcho] wires the hello service, which answers every
// GET with the raw request target. Request tracing and access logging are
// handled by middleware shared by both routers.
package http
