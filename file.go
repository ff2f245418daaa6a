// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// File is an open Inno Setup installer, memory-mapped for single-pass,
// random-free reading. Close releases the mapping (and the underlying
// file, if one was opened by name).
type File struct {
	data mmap.MMap
	raw  []byte
	f    *os.File
	opts Options
}

// Open memory-maps the installer at name. The caller must call Close
// when done.
func Open(name string, opts Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{data: data, f: f, opts: opts}, nil
}

// OpenBytes wraps an already-loaded buffer, e.g. one downloaded into
// memory rather than written to disk first.
func OpenBytes(data []byte, opts Options) *File {
	return &File{raw: data, opts: opts}
}

// Close releases the memory mapping and, if Open was used, the backing
// file descriptor.
func (f *File) Close() error {
	if f.data != nil {
		if err := f.data.Unmap(); err != nil {
			return err
		}
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

func (f *File) bytes() []byte {
	if f.data != nil {
		return f.data
	}
	return f.raw
}

// Parse locates the setup header's ID string, resolves the installer's
// Version from it, and decodes the full Header that follows.
func (f *File) Parse() (*Header, error) {
	r := bytes.NewReader(f.bytes())

	version, err := ReadSignature(r)
	if err != nil {
		return nil, err
	}

	f.opts.logger().Debug("resolved installer version", "version", version.String())

	reader := NewReader(r, version)
	return Decode(reader, version, f.opts)
}
