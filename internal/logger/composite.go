// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CompositeTimeFormat is the clock format used in composite log lines.
const CompositeTimeFormat = "15:04"

const compositeNameField = "logger"

// NewCompositeLogger returns a *Logger that renders every event as a single
// text line
//
//	<HH:MM> - <name> - <LEVEL>: <message>
//
// and writes it to w with one Write call per event. Additional fields are
// dropped. The level is Info; debug events are discarded.
func NewCompositeLogger(name string, w io.Writer) *Logger {
	output := zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       true,
		PartsOrder:    []string{zerolog.TimestampFieldName, compositeNameField, zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{compositeNameField},
		FormatPrepare: keepCompositeParts,
		FormatTimestamp: func(i any) string {
			return formatCompositeTime(i) + " -"
		},
		FormatFieldValue: func(i any) string {
			return fmt.Sprintf("%v -", i)
		},
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("%v", i)) + ":"
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%v", i)
		},
	}

	logger := zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str(compositeNameField, name).
		Logger()

	return &Logger{logger}
}

// keepCompositeParts removes every field that is not part of the line.
func keepCompositeParts(evt map[string]any) error {
	for key := range evt {
		switch key {
		case zerolog.TimestampFieldName, compositeNameField, zerolog.LevelFieldName, zerolog.MessageFieldName:
		default:
			delete(evt, key)
		}
	}

	return nil
}

func formatCompositeTime(i any) string {
	s, ok := i.(string)
	if !ok {
		return time.Now().Format(CompositeTimeFormat)
	}

	t, err := time.Parse(zerolog.TimeFieldFormat, s)
	if err != nil {
		return s
	}

	return t.Local().Format(CompositeTimeFormat)
}
