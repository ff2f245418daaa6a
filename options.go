// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import "log/slog"

// Options configures a decode pass.
type Options struct {
	// StrictEnums controls how an unrecognised enum discriminant is
	// handled. When true (the default), it is a fatal InvalidEnumError.
	// When false, the enum's zero value is substituted and decoding
	// continues — useful for a caller that would rather get a
	// best-effort header for an installer built by a newer Inno Setup
	// release than abort a batch scan. See DESIGN.md for the Open
	// Question this resolves.
	StrictEnums bool

	// Logger receives structured decode diagnostics. A nil Logger
	// disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the strict, silent default.
func DefaultOptions() Options {
	return Options{StrictEnums: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(nopWriter{}, nil))
	}
	return o.Logger
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
