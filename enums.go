// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

// Every u8-valued enum in the header is decoded through an exhaustive
// "from repr" mapping, mirroring the source's `enum_value!` macro. An
// unrecognised discriminant is reported via InvalidEnumError unless the
// caller opted into Options.StrictEnums == false, in which case the zero
// value of the enum is substituted and decoding continues — see
// DESIGN.md for the Open Question this resolves.

// AutoBool is the three-valued "disabled / enabled / runtime-decided"
// enum used pervasively through the header.
type AutoBool uint8

// AutoBool values.
const (
	AutoBoolNo AutoBool = iota
	AutoBoolYes
	AutoBoolAuto
)

func autoBoolFromRepr(v byte) (AutoBool, bool) {
	switch AutoBool(v) {
	case AutoBoolNo, AutoBoolYes, AutoBoolAuto:
		return AutoBool(v), true
	default:
		return 0, false
	}
}

// autoBoolFromHeaderFlags derives an AutoBool from a single on/off flag,
// used for versions that predate a field's dedicated byte encoding.
func autoBoolFromHeaderFlags(flags HeaderFlags, bit HeaderFlags) AutoBool {
	if flags.Has(bit) {
		return AutoBoolYes
	}
	return AutoBoolNo
}

// InnoStyle selects between the classic and modern wizard/uninstall
// chrome.
type InnoStyle uint8

// InnoStyle values.
const (
	InnoStyleClassic InnoStyle = iota
	InnoStyleModern
)

func innoStyleFromRepr(v byte) (InnoStyle, bool) {
	switch InnoStyle(v) {
	case InnoStyleClassic, InnoStyleModern:
		return InnoStyle(v), true
	default:
		return 0, false
	}
}

// InstallVerbosity controls how much UI feedback the installer shows
// while copying files.
type InstallVerbosity uint8

// InstallVerbosity values.
const (
	InstallVerbosityNormal InstallVerbosity = iota
	InstallVerbosityQuiet
	InstallVerbositySilent
)

func installVerbosityFromRepr(v byte) (InstallVerbosity, bool) {
	switch InstallVerbosity(v) {
	case InstallVerbosityNormal, InstallVerbosityQuiet, InstallVerbositySilent:
		return InstallVerbosity(v), true
	default:
		return 0, false
	}
}

// LogMode controls whether/how the uninstall log is (re)written.
type LogMode uint8

// LogMode values.
const (
	LogModeAppend LogMode = iota
	LogModeNew
	LogModeOverwrite
)

func logModeFromRepr(v byte) (LogMode, bool) {
	switch LogMode(v) {
	case LogModeAppend, LogModeNew, LogModeOverwrite:
		return LogMode(v), true
	default:
		return 0, false
	}
}

// PrivilegeLevel is the privilege level the installer requests.
type PrivilegeLevel uint8

// PrivilegeLevel values.
const (
	PrivilegeLevelNone PrivilegeLevel = iota
	PrivilegeLevelPowerUserOrAdmin
	PrivilegeLevelAdmin
	PrivilegeLevelLowest
)

func privilegeLevelFromRepr(v byte) (PrivilegeLevel, bool) {
	switch PrivilegeLevel(v) {
	case PrivilegeLevelNone, PrivilegeLevelPowerUserOrAdmin, PrivilegeLevelAdmin, PrivilegeLevelLowest:
		return PrivilegeLevel(v), true
	default:
		return 0, false
	}
}

func privilegeLevelFromHeaderFlags(flags HeaderFlags) PrivilegeLevel {
	if flags.Has(FlagAdminPrivilegesRequired) {
		return PrivilegeLevelAdmin
	}
	return PrivilegeLevelNone
}

// LanguageDetection controls how the installer picks its UI language
// before the user gets a say.
type LanguageDetection uint8

// LanguageDetection values.
const (
	LanguageDetectionUILanguage LanguageDetection = iota
	LanguageDetectionLocale
	LanguageDetectionNone
)

func languageDetectionFromRepr(v byte) (LanguageDetection, bool) {
	switch LanguageDetection(v) {
	case LanguageDetectionUILanguage, LanguageDetectionLocale, LanguageDetectionNone:
		return LanguageDetection(v), true
	default:
		return 0, false
	}
}

func languageDetectionFromHeaderFlags(flags HeaderFlags) LanguageDetection {
	if flags.Has(FlagDetectLanguageUsingLocale) {
		return LanguageDetectionLocale
	}
	return LanguageDetectionUILanguage
}

// Compression is the bulk compression method used for the installer's
// data entries.
type Compression uint8

// Compression values.
const (
	CompressionStored Compression = iota
	CompressionZip
	CompressionBZip
	CompressionLZMA
	CompressionLZMA2
)

func compressionFromRepr(v byte) (Compression, bool) {
	switch Compression(v) {
	case CompressionStored, CompressionZip, CompressionBZip, CompressionLZMA, CompressionLZMA2:
		return Compression(v), true
	default:
		return 0, false
	}
}

func compressionFromHeaderFlags(flags HeaderFlags) Compression {
	if flags.Has(FlagBzipUsed) {
		return CompressionBZip
	}
	return CompressionZip
}

// ImageAlphaFormat describes how the wizard's bitmap alpha channel, if
// any, should be interpreted.
type ImageAlphaFormat uint8

// ImageAlphaFormat values.
const (
	ImageAlphaFormatIgnored ImageAlphaFormat = iota
	ImageAlphaFormatDefined
	ImageAlphaFormatPremultiplied
)

func imageAlphaFormatFromRepr(v byte) (ImageAlphaFormat, bool) {
	switch ImageAlphaFormat(v) {
	case ImageAlphaFormatIgnored, ImageAlphaFormatDefined, ImageAlphaFormatPremultiplied:
		return ImageAlphaFormat(v), true
	default:
		return 0, false
	}
}
