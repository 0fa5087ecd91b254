// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import "errors"

// ErrEmptyLogFilePath is returned by [NewFileSink] when no path is given.
var ErrEmptyLogFilePath = errors.New("empty log file path")
