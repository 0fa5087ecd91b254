// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Downstream struct {
		WeatherURL  string   `json:"weather_url"`
		GetIPURL    string   `json:"ip_url"`
		HelloURL    string   `json:"hello_url"`
		HelloCAFile string   `json:"hello_ca_file"`
		Timeout     Duration `json:"timeout"`
	} `json:"downstream,omitempty"`

	Hello struct {
		Address    string `json:"address"`
		CertFile   string `json:"cert_file"`
		CommonName string `json:"common_name"`
	} `json:"hello,omitempty"`

	Log struct {
		File string `json:"file"`
		Name string `json:"name"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Downstream: Downstream{
			WeatherURL:  jsonCfg.Downstream.WeatherURL,
			GetIPURL:    jsonCfg.Downstream.GetIPURL,
			HelloURL:    jsonCfg.Downstream.HelloURL,
			HelloCAFile: jsonCfg.Downstream.HelloCAFile,
			Timeout:     time.Duration(jsonCfg.Downstream.Timeout),
		},
		Hello: Hello{
			Address:    jsonCfg.Hello.Address,
			CertFile:   jsonCfg.Hello.CertFile,
			CommonName: jsonCfg.Hello.CommonName,
		},
		Log: Log{
			File: jsonCfg.Log.File,
			Name: jsonCfg.Log.Name,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" or "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
