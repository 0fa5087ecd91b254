// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusOK is the only value the health route ever reports.
const StatusOK = "ok"

// Status is the body of the gateway health route.
type Status struct {
	Status string `json:"status"`
}

// ErrorDetail is the uniform error body returned by the gateway, e.g.
// {"detail":"Got 503 from https://wttr.in/paris?format=%C+%t"}.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
