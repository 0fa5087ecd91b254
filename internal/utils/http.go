// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response content types.
const (
	ContentTypeJSON     = "application/json"
	ContentTypeJSONUTF8 = "application/json; charset=UTF-8"
	ContentTypeText     = "text/plain; charset=utf-8"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Status{Status: models.StatusOK}, http.StatusOK)
//	WriteJSON(w, models.ErrorDetail{Detail: "Not Found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSONWithContentType(w, data, statusCode, ContentTypeJSON)
}

// WriteJSONWithContentType behaves like [WriteJSON] but sets contentType
// instead of the default "application/json".
//
// HTML characters are not escaped, so strings such as request targets with
// '&' are written as they are.
func WriteJSONWithContentType(w http.ResponseWriter, data any, statusCode int, contentType string) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// WriteText writes body as a plain-text response with the given status code.
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}
