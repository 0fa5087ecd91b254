// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// BodyShape is the expected form of a successful response body.
type BodyShape int

const (
	// ShapePlainText accepts any body and returns it as text.
	ShapePlainText BodyShape = iota
	// ShapeJSONValue accepts any syntactically valid JSON document.
	ShapeJSONValue
	// ShapeJSONRecord accepts a JSON object only.
	ShapeJSONRecord
)

func (s BodyShape) String() string {
	switch s {
	case ShapePlainText:
		return "text"
	case ShapeJSONValue:
		return "json"
	case ShapeJSONRecord:
		return "json object"
	default:
		return fmt.Sprintf("BodyShape(%d)", int(s))
	}
}

// check validates body against the shape.
func (s BodyShape) check(body []byte) error {
	switch s {
	case ShapeJSONValue:
		if !json.Valid(body) {
			return fmt.Errorf("%w: body is not valid json", ErrShapeMismatch)
		}
	case ShapeJSONRecord:
		var record map[string]json.RawMessage
		if err := json.Unmarshal(body, &record); err != nil || record == nil {
			return fmt.Errorf("%w: body is not a json object", ErrShapeMismatch)
		}
	}

	return nil
}

// argPlaceholder marks the caller supplied segment in a PathTemplate.
const argPlaceholder = "{arg}"

// Endpoint describes a single downstream operation.
type Endpoint struct {
	Name           string
	BaseURL        string
	PathTemplate   string
	ExpectedStatus int
	BodyShape      BodyShape
}

// URL builds the request URL by plain concatenation of the base URL and the
// path template with arg substituted. No escaping or normalization happens,
// so the result is exactly the URL reported in a [*DownstreamError].
func (e Endpoint) URL(arg string) string {
	return e.BaseURL + strings.ReplaceAll(e.PathTemplate, argPlaceholder, arg)
}

// Downstream names used as log fields and metric labels.
const (
	WeatherDownstream = "weather"
	MyIPDownstream    = "myip"
	HelloDownstream   = "hello"
)

// WeatherEndpoint returns the weather text endpoint rooted at baseURL.
func WeatherEndpoint(baseURL string) Endpoint {
	return Endpoint{
		Name:           WeatherDownstream,
		BaseURL:        baseURL,
		PathTemplate:   "/" + argPlaceholder + "?format=%C+%t",
		ExpectedStatus: http.StatusOK,
		BodyShape:      ShapePlainText,
	}
}

// MyIPEndpoint returns the IP lookup endpoint rooted at baseURL.
func MyIPEndpoint(baseURL string) Endpoint {
	return Endpoint{
		Name:           MyIPDownstream,
		BaseURL:        baseURL,
		PathTemplate:   "/v2/ip.json",
		ExpectedStatus: http.StatusOK,
		BodyShape:      ShapeJSONValue,
	}
}

// HelloEndpoint returns the hello echo endpoint rooted at baseURL.
func HelloEndpoint(baseURL string) Endpoint {
	return Endpoint{
		Name:           HelloDownstream,
		BaseURL:        baseURL,
		PathTemplate:   "/" + argPlaceholder,
		ExpectedStatus: http.StatusOK,
		BodyShape:      ShapeJSONRecord,
	}
}
