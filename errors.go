// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import (
	"errors"
	"fmt"
)

// Sentinel errors, following the teacher's Err*/Ano* package-var convention.
var (
	// ErrSignatureNotFound is returned when the expected Inno Setup
	// identification string is not present at the scanned offset.
	ErrSignatureNotFound = errors.New("inno: Setup Data signature not found")

	// ErrUnsupportedVersion is returned when the version in a signature
	// cannot be parsed as a major.minor.patch triple of values 0-255. A
	// triple that parses is not checked against any list of known
	// versions.
	ErrUnsupportedVersion = errors.New("inno: unsupported Inno Setup version")

	// ErrOutsideBoundary describes a read past the end of the supplied
	// data. The Reader does not return it; a short read is reported as
	// UnexpectedEOFError.
	ErrOutsideBoundary = errors.New("inno: read outside of data boundary")
)

// UnexpectedEOFError is returned whenever the decoder runs out of input in
// the middle of a field it expected to fully read. It always carries the
// Version in scope, per the spec's error-handling design, so callers can
// tell "this version is unsupported" apart from "this input is corrupt".
type UnexpectedEOFError struct {
	Version Version
	Field   string
	Wanted  int
	Got     int
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("inno: unexpected EOF reading field %q for version %s: wanted %d bytes, got %d",
		e.Field, e.Version, e.Wanted, e.Got)
}

// InvalidEnumError is returned when a u8-valued enum field holds a
// discriminant outside its exhaustive from-repr mapping.
type InvalidEnumError struct {
	Version Version
	Field   string
	Value   byte
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("inno: invalid enum value for field %q in version %s: %d", e.Field, e.Version, e.Value)
}

// InvalidArchitectureExpressionError is returned when the architecture
// boolean expression fields (introduced in 6.3.0) cannot be parsed.
type InvalidArchitectureExpressionError struct {
	Version    Version
	Expression string
	Reason     string
}

func (e *InvalidArchitectureExpressionError) Error() string {
	return fmt.Sprintf("inno: invalid architecture expression %q for version %s: %s",
		e.Expression, e.Version, e.Reason)
}
