// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command gateway runs the API gateway in front of the weather, IP lookup and
// hello services.
package main

import (
	"fmt"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/handler"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/metrics"
	"github.com/MKhiriev/go-api-gateway/internal/server"
	"github.com/MKhiriev/go-api-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	sink, err := logger.NewFileSink(cfg.Log.File)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating composite log sink")
	}
	statusLog := logger.NewCompositeLogger(cfg.Log.Name, sink)

	m := metrics.NewMetrics()

	downstream, err := adapter.NewHTTPDownstreamAdapter(cfg.Downstream, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating downstream adapter")
	}

	handlers, err := handler.NewHandlers(downstream, statusLog, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
