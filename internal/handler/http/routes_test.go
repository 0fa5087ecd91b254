// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/metrics"
	"github.com/MKhiriev/go-api-gateway/internal/mock"
	"github.com/MKhiriev/go-api-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGateway builds the gateway router over a mocked adapter.
func newTestGateway(t *testing.T) (http.Handler, *mock.MockDownstreamAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	downstream := mock.NewMockDownstreamAdapter(ctrl)

	h := NewHandler(downstream, logger.Nop(), metrics.NewMetrics(), logger.Nop())
	return h.Init(), downstream
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var detail models.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail.Detail
}

// ── health ──────────────────────────────────────────────────────────────────

func TestStatus_FixedBody(t *testing.T) {
	router, _ := newTestGateway(t)

	rec := serve(router, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// ── /v1/location ────────────────────────────────────────────────────────────

func TestLocation_Success(t *testing.T) {
	router, downstream := newTestGateway(t)
	downstream.EXPECT().FetchWeather(gomock.Any(), "London").Return("Partly cloudy +12°C", nil)

	rec := serve(router, http.MethodGet, "/v1/location/London")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Partly cloudy +12°C", rec.Body.String())
}

func TestDownstreamStatusFailure_IsTranslatedTo500Detail(t *testing.T) {
	tests := []struct {
		name   string
		target string
		setup  func(m *mock.MockDownstreamAdapter, err error)
		url    string
		status int
	}{
		{
			name:   "weather 503",
			target: "/v1/location/London",
			setup: func(m *mock.MockDownstreamAdapter, err error) {
				m.EXPECT().FetchWeather(gomock.Any(), "London").Return("", err)
			},
			url:    "https://wttr.in/London?format=%C+%t",
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "myip 404",
			target: "/v1/myip",
			setup: func(m *mock.MockDownstreamAdapter, err error) {
				m.EXPECT().FetchMyIP(gomock.Any()).Return(nil, err)
			},
			url:    "https://api4.my-ip.io/v2/ip.json",
			status: http.StatusNotFound,
		},
		{
			name:   "hello 302",
			target: "/v1/hello/world",
			setup: func(m *mock.MockDownstreamAdapter, err error) {
				m.EXPECT().FetchHello(gomock.Any(), "world").Return(models.Hello{}, err)
			},
			url:    "https://127.0.0.1:8443/world",
			status: http.StatusFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, downstream := newTestGateway(t)
			tt.setup(downstream, fmt.Errorf("wrapped: %w", &adapter.DownstreamError{URL: tt.url, StatusCode: tt.status}))

			rec := serve(router, http.MethodGet, tt.target)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, fmt.Sprintf("Got %d from %s", tt.status, tt.url), decodeDetail(t, rec))
		})
	}
}

func TestOtherFailures_AreGeneric500(t *testing.T) {
	for name, err := range map[string]error{
		"connectivity":   fmt.Errorf("%w: GET https://wttr.in/x: dial tcp: refused", adapter.ErrConnectivity),
		"shape mismatch": adapter.ErrShapeMismatch,
		"canceled":       context.Canceled,
	} {
		t.Run(name, func(t *testing.T) {
			router, downstream := newTestGateway(t)
			downstream.EXPECT().FetchWeather(gomock.Any(), "x").Return("", err)

			rec := serve(router, http.MethodGet, "/v1/location/x")

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Internal Server Error\n", rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "wttr")
		})
	}
}

// ── /v1/myip ────────────────────────────────────────────────────────────────

func TestMyIP_PassesBodyThrough(t *testing.T) {
	const body = `{"ip": "203.0.113.7", "type": "IPv4"}`
	router, downstream := newTestGateway(t)
	downstream.EXPECT().FetchMyIP(gomock.Any()).Return(json.RawMessage(body), nil)

	rec := serve(router, http.MethodGet, "/v1/myip")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, body, rec.Body.String())
}

// ── /v1/hello ───────────────────────────────────────────────────────────────

func TestHello_Success(t *testing.T) {
	router, downstream := newTestGateway(t)
	downstream.EXPECT().FetchHello(gomock.Any(), "anything").
		Return(models.Hello{Msg: "Hello!", Path: "/anything"}, nil)

	rec := serve(router, http.MethodGet, "/v1/hello/anything")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Hello!","path":"/anything"}`, rec.Body.String())
}

// ── routing ─────────────────────────────────────────────────────────────────

func TestInit_UnknownRouteReturns404Detail(t *testing.T) {
	router, _ := newTestGateway(t)

	for _, target := range []string{"/nope", "/v1", "/v1/unknown", "/v1/hello/a/b"} {
		rec := serve(router, http.MethodGet, target)

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "Not Found", decodeDetail(t, rec), target)
	}
}

func TestInit_WrongMethodReturns405Detail(t *testing.T) {
	router, _ := newTestGateway(t)

	for _, target := range []string{"/", "/v1/myip", "/v1/location/London"} {
		rec := serve(router, http.MethodPost, target)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, target)
		assert.Equal(t, "Method Not Allowed", decodeDetail(t, rec), target)
	}
}

func TestInit_MetricsRoute(t *testing.T) {
	router, _ := newTestGateway(t)
	serve(router, http.MethodGet, "/")

	rec := serve(router, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gateway_http_requests_total{method="GET",route="/",status_code="200"} 1`)
}

func TestInit_WithoutMetricsHasNoMetricsRoute(t *testing.T) {
	router := NewHandler(nil, logger.Nop(), nil, logger.Nop()).Init()

	rec := serve(router, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	router, _ := newTestGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestPathParameters_AreDecodedOnce(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "plain", target: "/v1/hello/world", want: "world"},
		{name: "escaped space", target: "/v1/hello/x%20z", want: "x z"},
		{name: "non-default escaping", target: "/v1/hello/x%41%20z", want: "xA z"},
		{name: "escaped percent stays single decoded", target: "/v1/hello/x%2520", want: "x%20"},
		{name: "utf-8", target: "/v1/hello/S%C3%A3o%20Paulo", want: "São Paulo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, downstream := newTestGateway(t)
			downstream.EXPECT().FetchHello(gomock.Any(), tt.want).
				Return(models.Hello{Msg: "Hello!", Path: "/" + tt.want}, nil)

			rec := serve(router, http.MethodGet, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPathParameters_EncodedSlashIsNotFound(t *testing.T) {
	for _, target := range []string{
		"/v1/hello/x%2Fy%20z",
		"/v1/hello/x%2fy",
		"/v1/location/a%2Fb",
	} {
		t.Run(target, func(t *testing.T) {
			// no downstream call is expected
			router, _ := newTestGateway(t)

			rec := serve(router, http.MethodGet, target)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not Found", decodeDetail(t, rec))
		})
	}
}

func TestLocation_EscapedParameterReachesAdapterDecoded(t *testing.T) {
	router, downstream := newTestGateway(t)
	downstream.EXPECT().FetchWeather(gomock.Any(), "New York").Return("Clear +5°C", nil)

	rec := serve(router, http.MethodGet, "/v1/location/New%20York")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Clear +5°C", rec.Body.String())
}
