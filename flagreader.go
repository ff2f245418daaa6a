// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

// FlagReader accumulates a version-gated schedule of HeaderFlags
// enrollments and, once the schedule is exhausted, reads the resulting
// bitstream off the wire. The number of bits enrolled is whatever the
// caller asked for via Add, in the exact order Add was called — that
// order must match the source installer's compile-time order, per
// spec.md §4.3 and the canonical schedule in §6.
//
// Bits beyond the enrolled count (padding in the last byte) are ignored.
// A flag that was never enrolled for this version is simply absent from
// the result; that is distinct from "enrolled but its bit was clear".
type FlagReader struct {
	r        *Reader
	enrolled []HeaderFlags
}

// NewFlagReader creates a FlagReader over r.
func NewFlagReader(r *Reader) *FlagReader {
	return &FlagReader{r: r}
}

// Add enrolls flag as the next bit position in the wire bitstream.
func (fr *FlagReader) Add(flag HeaderFlags) {
	fr.enrolled = append(fr.enrolled, flag)
}

// Finalize reads ceil(len(enrolled)/8) bytes and returns the HeaderFlags
// bitset populated from whichever enrolled bits were set.
func (fr *FlagReader) Finalize() (HeaderFlags, error) {
	n := len(fr.enrolled)
	if n == 0 {
		return 0, nil
	}
	buf := make([]byte, (n+7)/8)
	if err := fr.r.ReadExact("header_flags", buf); err != nil {
		return 0, err
	}
	var flags HeaderFlags
	for i, flag := range fr.enrolled {
		byteIdx, bitIdx := i/8, i%8
		if buf[byteIdx]&(1<<uint(bitIdx)) != 0 {
			flags |= flag
		}
	}
	return flags, nil
}
