// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// echo answers with the greeting and the request target exactly as it was
// received, query string included.
func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	hello := models.Hello{Msg: models.HelloGreeting, Path: r.RequestURI}

	if _, err := utils.WriteJSONWithContentType(w, hello, http.StatusOK, utils.ContentTypeJSONUTF8); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing echo response")
	}
}
