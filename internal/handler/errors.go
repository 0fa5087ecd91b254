// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the downstream
// adapter or the status logger is missing. This is treated as a fatal
// misconfiguration and causes the gateway to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
