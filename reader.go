// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import (
	"encoding/binary"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// UTF16LE and Windows1252 are the two legacy encodings the header schedule
// decodes strings under, named the way spec.md names them.
var (
	UTF16LE     encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	Windows1252 encoding.Encoding = charmap.Windows1252
)

// Reader is a forward-only, single-pass reader over the byte stream
// positioned at the start of the setup header. It has no internal
// buffering beyond what the underlying io.Reader provides, performs no
// seeks, and tracks only the byte offset it has consumed so far, which
// Offset reports. UnexpectedEOFError does not carry that offset; it
// names the field and the wanted and received byte counts.
type Reader struct {
	r       io.Reader
	version Version
	offset  int64
}

// NewReader wraps r as a primitive Reader for decoding a header belonging
// to the given version.
func NewReader(r io.Reader, version Version) *Reader {
	return &Reader{r: r, version: version}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.offset }

func (r *Reader) readFull(field string, buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.offset += int64(n)
	if err != nil {
		return &UnexpectedEOFError{Version: r.version, Field: field, Wanted: len(buf), Got: n}
	}
	return nil
}

// ReadU8 reads a single unsigned byte.
func (r *Reader) ReadU8(field string) (uint8, error) {
	var buf [1]byte
	if err := r.readFull(field, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE(field string) (uint32, error) {
	var buf [4]byte
	if err := r.readFull(field, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadU64LE reads a little-endian uint64.
func (r *Reader) ReadU64LE(field string) (uint64, error) {
	var buf [8]byte
	if err := r.readFull(field, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadExact fills buf completely or returns an UnexpectedEOFError.
func (r *Reader) ReadExact(field string, buf []byte) error {
	return r.readFull(field, buf)
}

// EncodedString reads a u32 little-endian byte length L, then L bytes,
// then decodes them under enc. L == 0 yields "not present" (nil, not an
// empty string pointer). Bytes that don't decode cleanly under enc are
// lossily replaced rather than rejected — the surrounding pipeline
// tolerates imperfect identity strings, per spec.md §7.
func (r *Reader) EncodedString(field string, enc encoding.Encoding) (*string, error) {
	length, err := r.ReadU32LE(field + ".length")
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	return r.sizedEncodedString(field, length, enc)
}

// SizedEncodedString reads exactly n bytes (no length prefix — the length
// was already captured elsewhere, as for the pre-1.3.0 license/info texts)
// and decodes them under enc. n == 0 yields "not present".
func (r *Reader) SizedEncodedString(field string, n uint32, enc encoding.Encoding) (*string, error) {
	if n == 0 {
		return nil, nil
	}
	return r.sizedEncodedString(field, n, enc)
}

func (r *Reader) sizedEncodedString(field string, n uint32, enc encoding.Encoding) (*string, error) {
	buf := make([]byte, n)
	if err := r.readFull(field, buf); err != nil {
		return nil, err
	}
	decoded, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		// Fallback: keep the undecoded raw bytes rather than failing the
		// whole parse.
		decoded = buf
	}
	s := string(decoded)
	return &s, nil
}
