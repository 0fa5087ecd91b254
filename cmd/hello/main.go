// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command hello issues a self-signed certificate on first start and serves
// the TLS echo endpoint with it.
package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-api-gateway/internal/certs"
	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/handler"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
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

	log := logger.NewLogger("hello")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// an existing file is reused as is
	if err = certs.EnsureCertificate(cfg.Hello.CertFile, certs.WithCommonName(cfg.Hello.CommonName)); err != nil {
		log.Fatal().Err(err).Str("cert_file", cfg.Hello.CertFile).Msg("error issuing certificate")
	}

	cert, err := certs.LoadCertificate(cfg.Hello.CertFile)
	if err != nil {
		log.Fatal().Err(err).Str("cert_file", cfg.Hello.CertFile).Msg("error loading certificate")
	}
	log.Info().
		Str("common_name", cert.CommonName).
		Time("not_before", cert.NotBefore).
		Time("not_after", cert.NotAfter).
		Msg("certificate loaded")
	if time.Now().After(cert.NotAfter) {
		log.Warn().Time("not_after", cert.NotAfter).Msg("certificate has expired and is still used")
	}

	handlers := handler.NewEchoHandlers(log)

	srv, err := server.NewTLSServer(handlers.HTTP.InitEcho(), cfg.Hello, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
