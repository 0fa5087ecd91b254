// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// gateway and the hello service. It is populated by merging values from a
// .env file, environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// Server holds the gateway listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Downstream holds the base URLs and client settings of the three
	// downstream dependencies. Its variables carry no prefix.
	Downstream Downstream

	// Hello holds the TLS echo service listener and certificate settings.
	Hello Hello `envPrefix:"HELLO_"`

	// Log holds the append-only composite log settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the gateway listener.
type Server struct {
	// HTTPAddress is the TCP address the gateway listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"127.0.0.1:8080"`

	// RequestTimeout bounds reading a request and writing its response.
	// Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Downstream holds the settings of the outbound HTTP client.
type Downstream struct {
	// WeatherURL is the base of the weather text service.
	// Env: WEATHERURL
	WeatherURL string `env:"WEATHERURL" envDefault:"https://wttr.in"`

	// GetIPURL is the base of the IP lookup service.
	// Env: GETIPURL
	GetIPURL string `env:"GETIPURL" envDefault:"https://api4.my-ip.io"`

	// HelloURL is the base of the TLS echo service.
	// Env: HELLOURL
	HelloURL string `env:"HELLOURL" envDefault:"https://127.0.0.1:8443"`

	// HelloCAFile is an optional PEM file whose certificates replace the
	// system roots for calls to the echo service, typically the file issued
	// for it. Other downstreams keep the system roots.
	// Env: HELLO_CA_FILE
	HelloCAFile string `env:"HELLO_CA_FILE"`

	// Timeout bounds a single outbound call. Zero keeps the HTTP client
	// default (no timeout).
	// Env: DOWNSTREAM_TIMEOUT
	Timeout time.Duration `env:"DOWNSTREAM_TIMEOUT"`
}

// Hello holds the TLS echo service settings.
type Hello struct {
	// Address is the TCP address the HTTPS listener binds.
	// Env: HELLO_ADDRESS
	Address string `env:"ADDRESS" envDefault:"127.0.0.1:8443"`

	// CertFile is the combined key and certificate PEM file. It is issued
	// on startup when missing.
	// Env: HELLO_CERT_FILE
	CertFile string `env:"CERT_FILE" envDefault:"./server.pem"`

	// CommonName is the subject of a newly issued certificate.
	// Env: HELLO_COMMON_NAME
	CommonName string `env:"COMMON_NAME" envDefault:"127.0.0.1"`
}

// Log holds the composite log settings.
type Log struct {
	// File is the append-only log file.
	// Env: LOG_FILE
	File string `env:"FILE" envDefault:"./logs/composite.log"`

	// Name is the logger name written into every line.
	// Env: LOG_NAME
	Name string `env:"NAME" envDefault:"main"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields):
//  1. .env file in the working directory (never overrides the process env)
//  2. Environment variables, with defaults
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
