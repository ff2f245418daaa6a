// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import "fmt"

// Triple is an Inno Setup version number (major, minor, patch).
//
// Every version gate in the header decoder is a comparison of a Version's
// Triple against a literal Triple, so the ordering here is what drives the
// whole decode schedule.
type Triple struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// NewTriple builds a Triple from its three components.
func NewTriple(major, minor, patch uint8) Triple {
	return Triple{Major: major, Minor: minor, Patch: patch}
}

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater than
// other, comparing Major, then Minor, then Patch in turn.
func (t Triple) Compare(other Triple) int {
	switch {
	case t.Major != other.Major:
		return cmp(t.Major, other.Major)
	case t.Minor != other.Minor:
		return cmp(t.Minor, other.Minor)
	default:
		return cmp(t.Patch, other.Patch)
	}
}

func cmp(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether t sorts strictly before other.
func (t Triple) Less(other Triple) bool { return t.Compare(other) < 0 }

// AtLeast reports whether t sorts at or after other.
func (t Triple) AtLeast(other Triple) bool { return t.Compare(other) >= 0 }

// String renders the triple as "major.minor.patch".
func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Patch)
}

// Version is the Triple plus the two orthogonal modality bits that gate
// the header decode schedule alongside it: whether the installer is built
// from the ISX fork, and whether it is a Unicode build.
type Version struct {
	Triple     Triple
	IsISX      bool
	IsUnicode  bool
}

// New builds a Version from a major/minor/patch triple and its modality.
func New(major, minor, patch uint8, isISX, isUnicode bool) Version {
	return Version{
		Triple:    NewTriple(major, minor, patch),
		IsISX:     isISX,
		IsUnicode: isUnicode,
	}
}

// AtLeast reports whether v's triple is at or after the literal
// major.minor.patch triple. Every "[>= (a,b,c)]" gate in the decode
// schedule is exactly this call.
func (v Version) AtLeast(major, minor, patch uint8) bool {
	return v.Triple.AtLeast(NewTriple(major, minor, patch))
}

// Before reports whether v's triple is strictly before the literal
// major.minor.patch triple. Every "[< (a,b,c)]" gate in the decode
// schedule is exactly this call.
func (v Version) Before(major, minor, patch uint8) bool {
	return v.Triple.Less(NewTriple(major, minor, patch))
}

// AtLeastISX reports the compound "ISX landed this earlier" gate form
// that appears throughout the schedule: v is at or after the mainline
// triple, or v is an ISX build at or after the (earlier) ISX triple. The
// decoder in header.go writes these gates out inline rather than calling
// this helper.
func (v Version) AtLeastISX(major, minor, patch uint8, isxMajor, isxMinor, isxPatch uint8) bool {
	return v.AtLeast(major, minor, patch) || (v.IsISX && v.AtLeast(isxMajor, isxMinor, isxPatch))
}

// String renders the version for error messages and logs, e.g.
// "6.3.0 (isx) (unicode)".
func (v Version) String() string {
	s := v.Triple.String()
	if v.IsISX {
		s += " (isx)"
	}
	if v.IsUnicode {
		s += " (unicode)"
	}
	return s
}
