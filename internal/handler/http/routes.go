// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init returns the gateway router. The client address is taken from
// X-Forwarded-For or X-Real-IP when a proxy sets them.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.status)
	router.Get("/docs", docsPage(gatewayDocsTitle, "/openapi.json"))
	router.Get("/openapi.json", openAPIDocument(gatewayOpenAPI))
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/v1", func(r chi.Router) {
		r.Get("/location/{location}", h.location)
		r.Get("/myip", h.myIP)
		r.Get("/hello/{whatever}", h.hello)

		r.Get("/docs", docsPage(v1DocsTitle, "/v1/openapi.json"))
		r.Get("/openapi.json", openAPIDocument(v1OpenAPI))
	})

	return router
}

// InitEcho returns the router of the hello service. Every GET path is echoed,
// any other method is answered with 501.
func (h *Handler) InitEcho() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.MethodNotAllowed(methodNotImplemented)

	router.Get("/*", h.echo)

	return router
}
