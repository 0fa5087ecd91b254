// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger holds the two loggers of the binaries: the JSON process
// logger ([NewLogger]) and the line oriented composite logger
// ([NewCompositeLogger]) that appends to a [FileSink].
//
// Both are *Logger, which embeds zerolog.Logger. Request handlers pick up
// the request scoped logger with [FromRequest] or [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

var configureOnce sync.Once

// configureGlobals sets the zerolog package settings shared by all process
// loggers: every level is emitted and the caller is reported as a function
// name under "func".
func configureGlobals() {
	configureOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// NewLogger returns the JSON process logger of a binary. Every entry goes to
// stdout and carries role, time and func.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	configureGlobals()

	return &Logger{
		Logger: zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithField returns a copy of l that adds key=value to every entry. l is
// left unchanged.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// FromContext returns the logger stored in ctx by zerolog's WithContext, or
// zerolog's default context logger. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// FromRequest is FromContext for the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
