// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/metrics"
	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// boundEndpoint pairs an endpoint with the client that calls it.
type boundEndpoint struct {
	Endpoint
	client *utils.HTTPClient
}

type httpDownstreamAdapter struct {
	weather boundEndpoint
	myIP    boundEndpoint
	hello   boundEndpoint

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPDownstreamAdapter constructs an HTTP implementation of
// [DownstreamAdapter] from the downstream configuration.
//
// Every endpoint gets its own client with redirects disabled and, when
// cfg.Timeout is positive, that timeout applied. When cfg.HelloCAFile is set
// the PEM certificates it contains become the only roots trusted by the
// hello client; the other clients keep the system roots.
//
// m may be nil, in which case no metrics are recorded.
func NewHTTPDownstreamAdapter(cfg config.Downstream, m *metrics.Metrics, log *logger.Logger) (DownstreamAdapter, error) {
	helloClient := newClient(cfg, log)
	if cfg.HelloCAFile != "" {
		pem, err := os.ReadFile(cfg.HelloCAFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCAFile, err)
		}
		roots := x509.NewCertPool()
		if !roots.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: no certificate found in %s", ErrInvalidCAFile, cfg.HelloCAFile)
		}
		helloClient.SetTLSClientConfig(&tls.Config{RootCAs: roots, MinVersion: tls.VersionTLS12})
	}

	log.Info().
		Str("weather_url", cfg.WeatherURL).
		Str("ip_url", cfg.GetIPURL).
		Str("hello_url", cfg.HelloURL).
		Dur("timeout", cfg.Timeout).
		Msg("downstream adapter created")

	return &httpDownstreamAdapter{
		weather: boundEndpoint{Endpoint: WeatherEndpoint(cfg.WeatherURL), client: newClient(cfg, log)},
		myIP:    boundEndpoint{Endpoint: MyIPEndpoint(cfg.GetIPURL), client: newClient(cfg, log)},
		hello:   boundEndpoint{Endpoint: HelloEndpoint(cfg.HelloURL), client: helloClient},
		metrics: m,
		logger:  log,
	}, nil
}

func newClient(cfg config.Downstream, log *logger.Logger) *utils.HTTPClient {
	client := utils.NewHTTPClient(log).DisableRedirects()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return client
}

// FetchWeather implements [DownstreamAdapter]. It GETs
// {base}/{location}?format=%C+%t and returns the body verbatim.
func (a *httpDownstreamAdapter) FetchWeather(ctx context.Context, location string) (string, error) {
	body, err := a.fetch(ctx, a.weather, location, nil)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// FetchMyIP implements [DownstreamAdapter]. It GETs {base}/v2/ip.json and
// returns the body unchanged once it is known to be valid JSON.
func (a *httpDownstreamAdapter) FetchMyIP(ctx context.Context) (json.RawMessage, error) {
	body, err := a.fetch(ctx, a.myIP, "", nil)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// FetchHello implements [DownstreamAdapter]. It GETs {base}/{whatever} and
// decodes the greeting. Both "msg" and "path" must be present strings.
func (a *httpDownstreamAdapter) FetchHello(ctx context.Context, whatever string) (models.Hello, error) {
	var hello models.Hello
	_, err := a.fetch(ctx, a.hello, whatever, func(body []byte) error {
		var raw struct {
			Msg  *string `json:"msg"`
			Path *string `json:"path"`
		}
		if err := json.Unmarshal(body, &raw); err != nil {
			return fmt.Errorf("%w: decode hello response: %w", ErrShapeMismatch, err)
		}
		if raw.Msg == nil || raw.Path == nil {
			return fmt.Errorf("%w: hello response misses msg or path", ErrShapeMismatch)
		}

		hello = models.Hello{Msg: *raw.Msg, Path: *raw.Path}
		return nil
	})
	if err != nil {
		return models.Hello{}, err
	}

	return hello, nil
}

// fetch issues exactly one GET for ep and returns the body of an expected
// response. decode, when not nil, runs after the body shape check and its
// error is reported as a shape failure.
func (a *httpDownstreamAdapter) fetch(ctx context.Context, ep boundEndpoint, arg string, decode func([]byte) error) ([]byte, error) {
	log := logger.FromContext(ctx)
	url := ep.URL(arg)
	start := time.Now()

	resp, err := ep.client.R().
		SetContext(ctx).
		Get(url)
	duration := time.Since(start)
	if err != nil {
		a.metrics.RecordDownstreamCall(ep.Name, metrics.OutcomeConnectivity, 0, duration)
		log.Err(err).Str("downstream", ep.Name).Str("url", url).Msg("downstream call failed")
		return nil, fmt.Errorf("%w: GET %s: %w", ErrConnectivity, url, err)
	}

	if err = mapHTTPError(ep.Endpoint, url, resp); err != nil {
		a.metrics.RecordDownstreamCall(ep.Name, metrics.OutcomeStatus, resp.StatusCode(), duration)
		log.Warn().
			Str("downstream", ep.Name).
			Str("url", url).
			Int("status", resp.StatusCode()).
			Msg("unexpected downstream status")
		return nil, err
	}

	body := resp.Body()
	err = ep.BodyShape.check(body)
	if err == nil && decode != nil {
		err = decode(body)
	}
	if err != nil {
		a.metrics.RecordDownstreamCall(ep.Name, metrics.OutcomeShape, resp.StatusCode(), duration)
		log.Err(err).Str("downstream", ep.Name).Str("url", url).Msg("unexpected downstream body")
		return nil, err
	}

	a.metrics.RecordDownstreamCall(ep.Name, metrics.OutcomeSuccess, resp.StatusCode(), duration)
	log.Debug().
		Str("downstream", ep.Name).
		Str("url", url).
		Dur("duration", duration).
		Int("size", len(body)).
		Msg("downstream call succeeded")

	return body, nil
}

// IsDownstreamError reports whether err carries a [*DownstreamError] and
// returns it.
func IsDownstreamError(err error) (*DownstreamError, bool) {
	var dsErr *DownstreamError
	if errors.As(err, &dsErr) {
		return dsErr, true
	}

	return nil, false
}
