// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

// WindowsVersion mirrors Inno Setup's TSetupVersionData entry: a Windows
// product version plus, separately, an NT kernel version and NT service
// pack level. All three axes are checked independently by the installer
// at runtime, which is why they travel together rather than collapsing
// into a single triple.
type WindowsVersion struct {
	Major uint8
	Minor uint8
	Build uint16

	NTMajor uint8
	NTMinor uint8
	NTBuild uint16

	NTServicePackMajor uint8
	NTServicePackMinor uint8
}

// readWindowsVersion reads one TSetupVersionData-equivalent entry: 4
// bytes of Windows major/minor/build, 4 bytes of NT major/minor/build,
// and 2 bytes of NT service pack major/minor — 10 bytes total.
func readWindowsVersion(r *Reader, field string) (WindowsVersion, error) {
	var v WindowsVersion
	var err error
	if v.Major, err = r.ReadU8(field + ".major"); err != nil {
		return v, err
	}
	if v.Minor, err = r.ReadU8(field + ".minor"); err != nil {
		return v, err
	}
	if v.Build, err = readU16LE(r, field+".build"); err != nil {
		return v, err
	}
	if v.NTMajor, err = r.ReadU8(field + ".nt_major"); err != nil {
		return v, err
	}
	if v.NTMinor, err = r.ReadU8(field + ".nt_minor"); err != nil {
		return v, err
	}
	if v.NTBuild, err = readU16LE(r, field+".nt_build"); err != nil {
		return v, err
	}
	if v.NTServicePackMajor, err = r.ReadU8(field + ".nt_service_pack_major"); err != nil {
		return v, err
	}
	if v.NTServicePackMinor, err = r.ReadU8(field + ".nt_service_pack_minor"); err != nil {
		return v, err
	}
	return v, nil
}

// WindowsVersionRange is the installer's minimum and maximum supported
// Windows version, 20 bytes on the wire (two 10-byte WindowsVersion
// entries back to back).
type WindowsVersionRange struct {
	Min WindowsVersion
	Max WindowsVersion
}

// readWindowsVersionRange reads a WindowsVersionRange's Min then Max
// entries in that order.
func readWindowsVersionRange(r *Reader, field string) (WindowsVersionRange, error) {
	var rng WindowsVersionRange
	var err error
	if rng.Min, err = readWindowsVersion(r, field+".min"); err != nil {
		return rng, err
	}
	if rng.Max, err = readWindowsVersion(r, field+".max"); err != nil {
		return rng, err
	}
	return rng, nil
}

func readU16LE(r *Reader, field string) (uint16, error) {
	lo, err := r.ReadU8(field + ".lo")
	if err != nil {
		return 0, err
	}
	hi, err := r.ReadU8(field + ".hi")
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}
