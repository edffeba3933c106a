// SPDX-License-Identifier: Unlicense OR MIT

// Package logging configures the structured logger shared by the
// bridge packages. Failures in this layer are absorbed rather than
// propagated, so the log is the only place they surface.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetOutput redirects log output, for example to a host-owned sink.
func SetOutput(w io.Writer, level slog.Level) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// Discard silences the log.
func Discard() {
	SetOutput(io.Discard, slog.LevelError)
}
