// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// writeDownstreamError translates an adapter error into the response. A
// downstream status failure becomes 500 with its message as detail; every
// other failure is a bare 500 that reveals nothing about the downstream.
func writeDownstreamError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if dsErr, ok := adapter.IsDownstreamError(err); ok {
		log.Warn().
			Str("url", dsErr.URL).
			Int("downstream_status", dsErr.StatusCode).
			Msg("downstream returned unexpected status")
		_, _ = utils.WriteJSON(w, models.ErrorDetail{Detail: dsErr.Error()}, http.StatusInternalServerError)
		return
	}

	log.Err(err).Msg("downstream call failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
