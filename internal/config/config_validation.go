// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	for name, raw := range map[string]string{
		"weather": cfg.Downstream.WeatherURL,
		"ip":      cfg.Downstream.GetIPURL,
		"hello":   cfg.Downstream.HelloURL,
	} {
		if !isHTTPURL(raw) {
			return fmt.Errorf("%w: %s base URL %q", ErrInvalidDownstreamConfigs, name, raw)
		}
	}
	if cfg.Downstream.Timeout < 0 {
		return ErrInvalidDownstreamConfigs
	}

	if cfg.Hello.Address == "" || cfg.Hello.CertFile == "" {
		return ErrInvalidHelloConfigs
	}

	if cfg.Log.File == "" || cfg.Log.Name == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
