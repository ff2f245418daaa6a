// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inno decodes the SETUP.HDR structure embedded in Inno Setup
// Windows installers.
//
// Inno Setup's on-disk header is a historically-accreted binary format:
// field presence, width, ordering, and encoding depend on a version triple
// spanning Inno Setup 1.2 through 6.3, a separate "ISX" fork timeline, and
// a Unicode/ANSI axis. This package reads that structure and produces a
// Header value describing the installer's identity, display strings,
// install options, architecture constraints, entry counts, and feature
// flags. It does not execute the installer, decompress anything, or parse
// the post-header entry tables beyond their counts.
package inno
