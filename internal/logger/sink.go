// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppendOnlySink is a persistence target that is only ever written to at
// its end.
type AppendOnlySink interface {
	// WriteLine appends line followed by a newline.
	WriteLine(line string) error
}

// FileSink appends to a file, opening and closing it on every write. The
// file is never held open between writes, so it can be rotated or archived
// externally at any time.
//
// FileSink also implements io.Writer so it can back a zerolog writer; every
// Write call is one open-append-close sequence.
type FileSink struct {
	path string
}

var _ AppendOnlySink = (*FileSink)(nil)

// NewFileSink returns a sink for path. The parent directory is created if
// it does not exist; the file itself is created lazily on the first write.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, ErrEmptyLogFilePath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory %q: %w", dir, err)
		}
	}

	return &FileSink{path: path}, nil
}

// Path returns the file the sink appends to.
func (s *FileSink) Path() string {
	return s.path
}

// WriteLine appends line and a trailing newline. A trailing newline already
// present in line is not doubled.
func (s *FileSink) WriteLine(line string) error {
	_, err := s.Write([]byte(strings.TrimSuffix(line, "\n") + "\n"))
	return err
}

// Write appends p verbatim.
func (s *FileSink) Write(p []byte) (n int, err error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("error opening log file: %w", err)
	}

	n, err = f.Write(p)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("error closing log file: %w", closeErr)
	}

	return n, err
}
