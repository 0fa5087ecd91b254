// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Hello is the payload served by the TLS echo service and relayed by the
// gateway's /v1/hello route.
type Hello struct {
	// Msg is the fixed greeting, always "Hello!" when produced by the echo
	// service.
	Msg string `json:"msg"`

	// Path is the raw request target the echo service received, including
	// the query string. It is never normalized or unescaped.
	Path string `json:"path"`
}

// HelloGreeting is the message the echo service puts into every [Hello].
const HelloGreeting = "Hello!"
