// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) location(w http.ResponseWriter, r *http.Request) {
	location, ok := pathSegment(r, "location")
	if !ok {
		notFound(w, r)
		return
	}

	weather, err := h.downstream.FetchWeather(r.Context(), location)
	if err != nil {
		writeDownstreamError(w, r, err)
		return
	}

	if _, err = utils.WriteText(w, weather, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing weather response")
	}
}

func (h *Handler) myIP(w http.ResponseWriter, r *http.Request) {
	ip, err := h.downstream.FetchMyIP(r.Context())
	if err != nil {
		writeDownstreamError(w, r, err)
		return
	}

	// passed through byte for byte
	w.Header().Set("Content-Type", utils.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(ip); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing ip response")
	}
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	whatever, ok := pathSegment(r, "whatever")
	if !ok {
		notFound(w, r)
		return
	}

	hello, err := h.downstream.FetchHello(r.Context(), whatever)
	if err != nil {
		writeDownstreamError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, hello, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing hello response")
	}
}

// pathSegment returns the decoded value of a single segment parameter. chi
// matches on the escaped path whenever the request carries non-default
// escaping, in which case the value is still escaped. A value that decodes
// to something containing "/" spans more than one segment and is rejected.
func pathSegment(r *http.Request, key string) (string, bool) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(value)
		if err != nil {
			return "", false
		}
		value = decoded
	}

	if strings.Contains(value, "/") {
		return "", false
	}

	return value, true
}
