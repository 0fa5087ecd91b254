// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// status is the health check. Every call appends one line to the status log.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	h.statusLog.Info().Msg("status called")

	if _, err := utils.WriteJSON(w, models.Status{Status: models.StatusOK}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing status response")
	}
}
