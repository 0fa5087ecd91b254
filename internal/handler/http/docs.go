// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	_ "embed"
	"fmt"
	"html"
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/utils"
)

var (
	//go:embed docs/gateway.openapi.json
	gatewayOpenAPI []byte

	//go:embed docs/v1.openapi.json
	v1OpenAPI []byte
)

const (
	gatewayDocsTitle = "go-api-gateway - Swagger UI"
	v1DocsTitle      = "go-api-gateway v1 - Swagger UI"
)

const swaggerUIHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: "%s",
      dom_id: "#swagger-ui",
      deepLinking: true,
      presets: [SwaggerUIBundle.presets.apis],
      layout: "BaseLayout"
    });
  </script>
</body>
</html>`

// docsPage serves a Swagger UI page that loads the document at specURL.
func docsPage(title, specURL string) http.HandlerFunc {
	page := []byte(fmt.Sprintf(swaggerUIHTML, html.EscapeString(title), specURL))

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}

func openAPIDocument(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", utils.ContentTypeJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	}
}
