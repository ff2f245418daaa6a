// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the structured logger shared by the innohdr
// command-line tool. Library code never touches this package directly;
// it receives a *slog.Logger through inno.Options instead.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// New builds a text-handler logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ForVerbosity returns a logger writing to stderr, at LevelDebug when
// verbose is true and LevelWarn otherwise.
func ForVerbosity(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return New(os.Stderr, level)
}
