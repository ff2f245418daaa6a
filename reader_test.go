// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	buf := []byte{0x2a, 0x01, 0x02, 0x03, 0x04, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	r := NewReader(bytes.NewReader(buf), New(6, 3, 0, false, true))

	b, err := r.ReadU8("byte")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2a), b)

	u32, err := r.ReadU32LE("u32")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), u32)

	u64, err := r.ReadU64LE("u64")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	assert.Equal(t, int64(13), r.Offset())
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}), New(6, 3, 0, false, true))
	_, err := r.ReadU32LE("too_short")
	require.Error(t, err)
	var eofErr *UnexpectedEOFError
	require.ErrorAs(t, err, &eofErr)
	assert.Equal(t, "too_short", eofErr.Field)
	assert.Equal(t, 4, eofErr.Wanted)
	assert.Equal(t, 2, eofErr.Got)
}

func TestReaderEncodedStringZeroLengthIsAbsent(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00}
	r := NewReader(bytes.NewReader(buf), New(6, 3, 0, false, true))
	s, err := r.EncodedString("field", UTF16LE)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestReaderEncodedStringUTF16LE(t *testing.T) {
	payload := []byte("A\x00p\x00p\x00") // "App" in UTF-16LE
	var buf bytes.Buffer
	buf.Write([]byte{byte(len(payload)), 0, 0, 0})
	buf.Write(payload)

	r := NewReader(bytes.NewReader(buf.Bytes()), New(6, 3, 0, false, true))
	s, err := r.EncodedString("app_name", UTF16LE)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "App", *s)
}

func TestReaderSizedEncodedStringWindows1252(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("hello")), New(1, 2, 10, false, false))
	s, err := r.SizedEncodedString("license_text", 5, Windows1252)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "hello", *s)
}

func TestReaderSizedEncodedStringZeroIsAbsent(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), New(1, 2, 10, false, false))
	s, err := r.SizedEncodedString("info_after", 0, Windows1252)
	require.NoError(t, err)
	assert.Nil(t, s)
}
