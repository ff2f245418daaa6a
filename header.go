// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import "strings"

// LeadBytes is the 256-bit "lead bytes" table present only for
// non-Unicode builds >= 2.0.6, identifying which byte values begin a
// multi-byte character in the installer's configured ANSI code page. It
// is not consulted to switch encodings by this decoder; it is preserved
// verbatim for downstream consumers.
type LeadBytes [32]byte

// Has reports whether b is marked as a lead byte.
func (l LeadBytes) Has(b byte) bool {
	return l[b/8]&(1<<(b%8)) != 0
}

// Header is the fully decoded SETUP.HDR record.
type Header struct {
	Version Version

	// Identity strings.
	AppName              *string
	AppVersionedName     *string
	AppID                *string
	AppCopyright         *string
	AppPublisher         *string
	AppPublisherURL      *string
	AppSupportPhone      *string
	AppSupportURL        *string
	AppUpdatesURL        *string
	AppVersion           *string
	DefaultDirName       *string
	DefaultGroupName     *string
	UninstallIconName    *string
	BaseFilename         *string
	LicenseText          *string
	InfoBefore           *string
	InfoAfter            *string
	UninstallFilesDir    *string
	UninstallName        *string
	UninstallIcon        *string
	AppMutex             *string
	DefaultUserName      *string
	DefaultUserOrg       *string
	DefaultSerial        *string
	UninstallerSignature *string
	CompiledCode         *string
	AppReadmeFile        *string
	AppContact           *string
	AppComments          *string
	AppModifyPath        *string
	CloseApplicationsFilter *string
	SetupMutex           *string

	CreateUninstallRegistryKey *string
	Uninstallable              *string
	ChangesEnvironment         *string
	ChangesAssociations        *string

	// Architecture constraints.
	ArchitecturesAllowed            ArchitectureSet
	ArchitecturesDisallowed         ArchitectureSet
	ArchitecturesInstallIn64BitMode ArchitectureSet

	// Entry counts.
	LanguageCount             uint32
	MessageCount              uint32
	PermissionCount           uint32
	TypeCount                 uint32
	ComponentCount            uint32
	TaskCount                 uint32
	DirectoryCount            uint32
	FileCount                 uint32
	DataEntryCount            uint32
	IconCount                 uint32
	IniEntryCount             uint32
	RegistryEntryCount        uint32
	DeleteEntryCount          uint32
	UninstallDeleteEntryCount uint32
	RunEntryCount             uint32
	UninstallRunEntryCount    uint32

	// UI appearance.
	BackColor             uint32
	BackColor2            uint32
	ImageBackColor        uint32
	SmallImageBackColor   uint32
	WizardStyle           InnoStyle
	WizardResizePercentX  uint32
	WizardResizePercentY  uint32
	ImageAlphaFormat      ImageAlphaFormat

	// Install behavior.
	PasswordSalt                       string
	ExtraDiskSpaceRequired             uint64
	SlicesPerDisk                      uint32
	InstallVerbosity                   InstallVerbosity
	UninstallLogMode                   LogMode
	UninstallStyle                     InnoStyle
	DirExistsWarning                   AutoBool
	PrivilegesRequired                 PrivilegeLevel
	PrivilegesRequiredOverridesAllowed PrivilegesRequiredOverrides
	ShowLanguageDialog                 AutoBool
	LanguageDetection                  LanguageDetection
	Compression                        Compression
	SignedUninstallerOriginalSize      uint32
	SignedUninstallerHeaderChecksum    uint32
	DisableDirPage                     AutoBool
	DisableProgramGroupPage            AutoBool
	UninstallDisplaySize               uint64

	WindowsVersionRange WindowsVersionRange
	LeadBytes           *LeadBytes

	Flags HeaderFlags
}

// decoder holds the state threaded through the decode schedule: the
// primitive reader, the in-scope version, the caller's Options, and the
// Header record being built up. It additionally remembers the legacy
// text sizes that a later step in the schedule consumes, since the
// schedule is not purely left-to-right in what it writes versus what it
// later reads.
type decoder struct {
	r       *Reader
	version Version
	opts    Options
	h       *Header

	legacyLicenseSize    uint32
	legacyInfoBeforeSize uint32
	legacyInfoAfterSize  uint32
}

// Decode runs the full version-gated schedule against r and returns the
// populated Header. No partial result is ever returned on error.
func Decode(r *Reader, version Version, opts Options) (*Header, error) {
	d := &decoder{r: r, version: version, opts: opts, h: &Header{Version: version}}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.h, nil
}

func (d *decoder) identityEncoding() encodingKind {
	if d.version.IsUnicode {
		return encUTF16LE
	}
	return encWindows1252
}

type encodingKind int

const (
	encUTF16LE encodingKind = iota
	encWindows1252
)

func (d *decoder) readString(field string, k encodingKind) (*string, error) {
	if k == encUTF16LE {
		return d.r.EncodedString(field, UTF16LE)
	}
	return d.r.EncodedString(field, Windows1252)
}

func (d *decoder) readIdentityString(field string) (*string, error) {
	return d.readString(field, d.identityEncoding())
}

func (d *decoder) run() error {
	v := d.version
	h := d.h

	// Prologue.
	if v.Before(1, 3, 0) {
		if _, err := d.r.ReadU32LE("uncompressed_header_size"); err != nil {
			return err
		}
	}

	if err := d.identityBlock(); err != nil {
		return err
	}

	if v.AtLeast(6, 3, 0) {
		if err := d.architectureExpressions(); err != nil {
			return err
		}
	}

	if v.AtLeast(5, 2, 5) {
		if err := d.textBlock(); err != nil {
			return err
		}
	}

	if v.AtLeast(5, 2, 1) && v.Before(5, 3, 10) {
		sig, err := d.r.EncodedString("uninstaller_signature", UTF16LE)
		if err != nil {
			return err
		}
		h.UninstallerSignature = sig
	}
	if v.AtLeast(5, 2, 5) {
		cc, err := d.r.EncodedString("compiled_code", UTF16LE)
		if err != nil {
			return err
		}
		if cc != nil {
			h.CompiledCode = cc
		}
	}

	if v.AtLeast(2, 0, 6) && !v.IsUnicode {
		var buf LeadBytes
		if err := d.r.ReadExact("lead_bytes", buf[:]); err != nil {
			return err
		}
		h.LeadBytes = &buf
	}

	if err := d.counts(); err != nil {
		return err
	}

	if v.Before(1, 3, 0) {
		var err error
		if d.legacyLicenseSize, err = d.r.ReadU32LE("license_size"); err != nil {
			return err
		}
		if d.legacyInfoBeforeSize, err = d.r.ReadU32LE("info_before_size"); err != nil {
			return err
		}
		if d.legacyInfoAfterSize, err = d.r.ReadU32LE("info_after_size"); err != nil {
			return err
		}
	}

	rng, err := readWindowsVersionRange(d.r, "windows_version_range")
	if err != nil {
		return err
	}
	h.WindowsVersionRange = rng

	if err := d.colorsAndWizard(); err != nil {
		return err
	}

	if err := d.discardHeaderChecksum(); err != nil {
		return err
	}

	if v.AtLeast(4, 2, 2) {
		var salt [8]byte
		if err := d.r.ReadExact("password_salt", salt[:]); err != nil {
			return err
		}
		h.PasswordSalt = strings.ToValidUTF8("PasswordCheckHash"+string(salt[:]), "�")
	}

	if err := d.diskSpaceVerbosityPrivileges(); err != nil {
		return err
	}

	var restartYes, restartAuto bool
	if v.AtLeast(3, 0, 0) && v.Before(3, 0, 3) {
		b, err := d.r.ReadU8("restart_policy")
		if err != nil {
			return err
		}
		ab, ok := autoBoolFromRepr(b)
		if !ok {
			if err := d.enumError("restart_policy", b); err != nil {
				return err
			}
		} else {
			switch ab {
			case AutoBoolYes:
				restartYes = true
			case AutoBoolAuto:
				restartAuto = true
			}
		}
	}

	if err := d.privilegeAndUIEnums(); err != nil {
		return err
	}

	if err := d.legacyArchitectures(); err != nil {
		return err
	}

	if v.AtLeast(5, 2, 1) && v.Before(5, 3, 10) {
		orig, err := d.r.ReadU32LE("signed_uninstaller_original_size")
		if err != nil {
			return err
		}
		checksum, err := d.r.ReadU32LE("signed_uninstaller_header_checksum")
		if err != nil {
			return err
		}
		h.SignedUninstallerOriginalSize = orig
		h.SignedUninstallerHeaderChecksum = checksum
	}

	if v.AtLeast(5, 3, 3) {
		b, err := d.r.ReadU8("disable_dir_page")
		if err != nil {
			return err
		}
		if h.DisableDirPage, err = d.autoBool("disable_dir_page", b); err != nil {
			return err
		}
		b2, err := d.r.ReadU8("disable_program_group_page")
		if err != nil {
			return err
		}
		if h.DisableProgramGroupPage, err = d.autoBool("disable_program_group_page", b2); err != nil {
			return err
		}
	}

	if v.AtLeast(5, 5, 0) {
		size, err := d.r.ReadU64LE("uninstall_display_size")
		if err != nil {
			return err
		}
		h.UninstallDisplaySize = size
	} else if v.AtLeast(5, 3, 6) {
		size, err := d.r.ReadU32LE("uninstall_display_size")
		if err != nil {
			return err
		}
		h.UninstallDisplaySize = uint64(size)
	}

	flags, err := d.readFlags()
	if err != nil {
		return err
	}
	if restartYes {
		flags |= FlagAlwaysRestart
	}
	if restartAuto {
		flags |= FlagRestartIfNeededByRun
	}
	h.Flags = flags

	d.backfill()

	if v.Before(1, 3, 0) {
		if err := d.legacySizedText(); err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) identityBlock() error {
	v := d.version
	h := d.h
	var err error

	if h.AppName, err = d.readIdentityString("app_name"); err != nil {
		return err
	}
	if h.AppVersionedName, err = d.readIdentityString("app_versioned_name"); err != nil {
		return err
	}
	if v.AtLeast(1, 3, 0) {
		if h.AppID, err = d.readIdentityString("app_id"); err != nil {
			return err
		}
	}
	if h.AppCopyright, err = d.readIdentityString("app_copyright"); err != nil {
		return err
	}
	if v.AtLeast(1, 3, 0) {
		if h.AppPublisher, err = d.readIdentityString("app_publisher"); err != nil {
			return err
		}
		if h.AppPublisherURL, err = d.readIdentityString("app_publisher_url"); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 1, 13) {
		if h.AppSupportPhone, err = d.readIdentityString("app_support_phone"); err != nil {
			return err
		}
	}
	if v.AtLeast(1, 3, 0) {
		if h.AppSupportURL, err = d.readIdentityString("app_support_url"); err != nil {
			return err
		}
		if h.AppUpdatesURL, err = d.readIdentityString("app_updates_url"); err != nil {
			return err
		}
		if h.AppVersion, err = d.readIdentityString("app_version"); err != nil {
			return err
		}
	}
	if h.DefaultDirName, err = d.readIdentityString("default_dir_name"); err != nil {
		return err
	}
	if h.DefaultGroupName, err = d.readIdentityString("default_group_name"); err != nil {
		return err
	}
	if v.Before(3, 0, 0) {
		if h.UninstallIconName, err = d.r.EncodedString("uninstall_icon_name", Windows1252); err != nil {
			return err
		}
	}
	if h.BaseFilename, err = d.readIdentityString("base_filename"); err != nil {
		return err
	}
	if v.AtLeast(1, 3, 0) && v.Before(5, 2, 5) {
		if err := d.textBlock(); err != nil {
			return err
		}
	}
	if v.AtLeast(1, 3, 3) {
		if h.UninstallFilesDir, err = d.readIdentityString("uninstall_files_dir"); err != nil {
			return err
		}
	}
	if v.AtLeast(1, 3, 6) {
		if h.UninstallName, err = d.readIdentityString("uninstall_name"); err != nil {
			return err
		}
		if h.UninstallIcon, err = d.readIdentityString("uninstall_icon"); err != nil {
			return err
		}
	}
	if v.AtLeast(1, 3, 14) {
		if h.AppMutex, err = d.readIdentityString("app_mutex"); err != nil {
			return err
		}
	}
	if v.AtLeast(3, 0, 0) {
		if h.DefaultUserName, err = d.readIdentityString("default_user_name"); err != nil {
			return err
		}
		if h.DefaultUserOrg, err = d.readIdentityString("default_user_organisation"); err != nil {
			return err
		}
	}
	if v.AtLeast(4, 0, 0) {
		if h.DefaultSerial, err = d.readIdentityString("default_serial"); err != nil {
			return err
		}
	}
	if (v.AtLeast(4, 0, 0) && v.Before(5, 2, 5)) || (v.IsISX && v.AtLeast(1, 3, 24)) {
		if h.CompiledCode, err = d.r.EncodedString("compiled_code", Windows1252); err != nil {
			return err
		}
	}
	if v.AtLeast(4, 2, 4) {
		if h.AppReadmeFile, err = d.readIdentityString("app_readme_file"); err != nil {
			return err
		}
		if h.AppContact, err = d.readIdentityString("app_contact"); err != nil {
			return err
		}
		if h.AppComments, err = d.readIdentityString("app_comments"); err != nil {
			return err
		}
		if h.AppModifyPath, err = d.readIdentityString("app_modify_path"); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 3, 8) {
		if h.CreateUninstallRegistryKey, err = d.r.EncodedString("create_uninstall_registry_key", UTF16LE); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 3, 10) {
		if h.Uninstallable, err = d.r.EncodedString("uninstallable", UTF16LE); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 5, 0) {
		if h.CloseApplicationsFilter, err = d.readIdentityString("close_applications_filter"); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 5, 6) {
		if h.SetupMutex, err = d.readIdentityString("setup_mutex"); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 6, 1) {
		if h.ChangesEnvironment, err = d.r.EncodedString("changes_environment", UTF16LE); err != nil {
			return err
		}
		if h.ChangesAssociations, err = d.r.EncodedString("changes_associations", UTF16LE); err != nil {
			return err
		}
	}
	return nil
}

// architectureExpressions reads the 6.3.0+ allowed/disallowed and
// install_in_64_bit_mode boolean expressions.
func (d *decoder) architectureExpressions() error {
	h := d.h
	expr, err := d.r.EncodedString("architectures_allowed", UTF16LE)
	if err != nil {
		return err
	}
	if expr == nil {
		h.ArchitecturesAllowed = NewArchitectureSet(ArchX86Compatible)
		h.ArchitecturesDisallowed = 0
	} else {
		allowed, disallowed, err := ParseArchitectureExpression(d.version, *expr)
		if err != nil {
			return err
		}
		h.ArchitecturesAllowed = allowed
		h.ArchitecturesDisallowed = disallowed
	}

	mode, err := d.r.EncodedString("architectures_install_in_64_bit_mode", UTF16LE)
	if err != nil {
		return err
	}
	if mode == nil {
		h.ArchitecturesInstallIn64BitMode = NewArchitectureSet(ArchX86Compatible)
	} else {
		allowed, err := ParseInstall64BitModeExpression(d.version, *mode)
		if err != nil {
			return err
		}
		h.ArchitecturesInstallIn64BitMode = allowed
	}
	return nil
}

// textBlock reads license_text, info_before, info_after. It is called
// both for the legacy position (>= 1.3.0 && < 5.2.5, inline in the
// identity block) and the modern position (>= 5.2.5, after the
// architecture expressions and before the uninstaller signature).
func (d *decoder) textBlock() error {
	h := d.h
	var err error
	if h.LicenseText, err = d.r.EncodedString("license_text", Windows1252); err != nil {
		return err
	}
	if h.InfoBefore, err = d.r.EncodedString("info_before", Windows1252); err != nil {
		return err
	}
	if h.InfoAfter, err = d.r.EncodedString("info_after", Windows1252); err != nil {
		return err
	}
	return nil
}

func (d *decoder) counts() error {
	v := d.version
	h := d.h
	var err error

	if v.AtLeast(4, 0, 0) {
		if h.LanguageCount, err = d.r.ReadU32LE("language_count"); err != nil {
			return err
		}
	} else if v.AtLeast(2, 0, 1) {
		h.LanguageCount = 1
	}
	if v.AtLeast(4, 2, 1) {
		if h.MessageCount, err = d.r.ReadU32LE("message_count"); err != nil {
			return err
		}
	}
	if v.AtLeast(4, 1, 0) {
		if h.PermissionCount, err = d.r.ReadU32LE("permission_count"); err != nil {
			return err
		}
	}
	if v.AtLeast(2, 0, 0) || v.IsISX {
		if h.TypeCount, err = d.r.ReadU32LE("type_count"); err != nil {
			return err
		}
		if h.ComponentCount, err = d.r.ReadU32LE("component_count"); err != nil {
			return err
		}
	}
	if v.AtLeast(2, 0, 0) || (v.IsISX && v.AtLeast(1, 3, 17)) {
		if h.TaskCount, err = d.r.ReadU32LE("task_count"); err != nil {
			return err
		}
	}
	if h.DirectoryCount, err = d.r.ReadU32LE("directory_count"); err != nil {
		return err
	}
	if h.FileCount, err = d.r.ReadU32LE("file_count"); err != nil {
		return err
	}
	if h.DataEntryCount, err = d.r.ReadU32LE("data_entry_count"); err != nil {
		return err
	}
	if h.IconCount, err = d.r.ReadU32LE("icon_count"); err != nil {
		return err
	}
	if h.IniEntryCount, err = d.r.ReadU32LE("ini_entry_count"); err != nil {
		return err
	}
	if h.RegistryEntryCount, err = d.r.ReadU32LE("registry_entry_count"); err != nil {
		return err
	}
	if h.DeleteEntryCount, err = d.r.ReadU32LE("delete_entry_count"); err != nil {
		return err
	}
	if h.UninstallDeleteEntryCount, err = d.r.ReadU32LE("uninstall_delete_entry_count"); err != nil {
		return err
	}
	if h.RunEntryCount, err = d.r.ReadU32LE("run_entry_count"); err != nil {
		return err
	}
	if h.UninstallRunEntryCount, err = d.r.ReadU32LE("uninstall_run_entry_count"); err != nil {
		return err
	}
	return nil
}

func (d *decoder) colorsAndWizard() error {
	v := d.version
	h := d.h
	var err error

	if h.BackColor, err = d.r.ReadU32LE("back_color"); err != nil {
		return err
	}
	if v.AtLeast(1, 3, 3) {
		if h.BackColor2, err = d.r.ReadU32LE("back_color2"); err != nil {
			return err
		}
	}
	if v.Before(5, 5, 7) {
		if h.ImageBackColor, err = d.r.ReadU32LE("image_back_color"); err != nil {
			return err
		}
	}
	if (v.AtLeast(2, 0, 0) && v.Before(5, 0, 4)) || v.IsISX {
		if h.SmallImageBackColor, err = d.r.ReadU32LE("small_image_back_color"); err != nil {
			return err
		}
	}
	if v.AtLeast(6, 0, 0) {
		b, err := d.r.ReadU8("wizard_style")
		if err != nil {
			return err
		}
		style, ok := innoStyleFromRepr(b)
		if !ok {
			if err := d.enumError("wizard_style", b); err != nil {
				return err
			}
		}
		h.WizardStyle = style
		if h.WizardResizePercentX, err = d.r.ReadU32LE("wizard_resize_percent_x"); err != nil {
			return err
		}
		if h.WizardResizePercentY, err = d.r.ReadU32LE("wizard_resize_percent_y"); err != nil {
			return err
		}
	}
	if v.AtLeast(5, 5, 7) {
		b, err := d.r.ReadU8("image_alpha_format")
		if err != nil {
			return err
		}
		format, ok := imageAlphaFormatFromRepr(b)
		if !ok {
			if err := d.enumError("image_alpha_format", b); err != nil {
				return err
			}
		}
		h.ImageAlphaFormat = format
	}
	return nil
}

func (d *decoder) discardHeaderChecksum() error {
	v := d.version
	switch {
	case v.Before(4, 2, 0):
		_, err := d.r.ReadU32LE("header_checksum_crc32")
		return err
	case v.Before(5, 3, 9):
		var buf [16]byte
		return d.r.ReadExact("header_checksum_md5", buf[:])
	default:
		var buf [20]byte
		return d.r.ReadExact("header_checksum_sha1", buf[:])
	}
}

func (d *decoder) diskSpaceVerbosityPrivileges() error {
	v := d.version
	h := d.h
	var err error

	if v.AtLeast(4, 0, 0) {
		if h.ExtraDiskSpaceRequired, err = d.r.ReadU64LE("extra_disk_space_required"); err != nil {
			return err
		}
	} else {
		size, err := d.r.ReadU32LE("extra_disk_space_required")
		if err != nil {
			return err
		}
		h.ExtraDiskSpaceRequired = uint64(size)
	}

	if v.AtLeast(4, 0, 0) {
		if h.SlicesPerDisk, err = d.r.ReadU32LE("slices_per_disk"); err != nil {
			return err
		}
	} else {
		h.SlicesPerDisk = 1
	}

	if (v.AtLeast(2, 0, 0) && v.Before(5, 0, 0)) || (v.IsISX && v.AtLeast(1, 3, 4)) {
		b, err := d.r.ReadU8("install_verbosity")
		if err != nil {
			return err
		}
		if h.InstallVerbosity, err = d.installVerbosity(b); err != nil {
			return err
		}
	}

	if v.AtLeast(1, 3, 0) {
		b, err := d.r.ReadU8("uninstall_log_mode")
		if err != nil {
			return err
		}
		if h.UninstallLogMode, err = d.logMode(b); err != nil {
			return err
		}
	}

	if v.AtLeast(5, 0, 0) {
		h.UninstallStyle = InnoStyleModern
	} else if v.AtLeast(2, 0, 0) || (v.IsISX && v.AtLeast(1, 3, 13)) {
		b, err := d.r.ReadU8("uninstall_style")
		if err != nil {
			return err
		}
		style, ok := innoStyleFromRepr(b)
		if !ok {
			if err := d.enumError("uninstall_style", b); err != nil {
				return err
			}
		}
		h.UninstallStyle = style
	}

	if v.AtLeast(1, 3, 6) {
		b, err := d.r.ReadU8("dir_exists_warning")
		if err != nil {
			return err
		}
		if h.DirExistsWarning, err = d.autoBool("dir_exists_warning", b); err != nil {
			return err
		}
	}

	if v.IsISX && v.AtLeast(2, 0, 10) && v.Before(3, 0, 0) {
		if _, err := d.r.ReadU32LE("code_line_offset"); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) privilegeAndUIEnums() error {
	v := d.version
	h := d.h

	if v.AtLeast(3, 0, 4) || (v.IsISX && v.AtLeast(3, 0, 3)) {
		b, err := d.r.ReadU8("privileges_required")
		if err != nil {
			return err
		}
		level, ok := privilegeLevelFromRepr(b)
		if !ok {
			if err := d.enumError("privileges_required", b); err != nil {
				return err
			}
		}
		h.PrivilegesRequired = level
	}

	if v.AtLeast(5, 7, 0) {
		b, err := d.r.ReadU8("privileges_required_overrides_allowed")
		if err != nil {
			return err
		}
		h.PrivilegesRequiredOverridesAllowed = PrivilegesRequiredOverrides(b)
	}

	if v.AtLeast(4, 0, 10) {
		b, err := d.r.ReadU8("show_language_dialog")
		if err != nil {
			return err
		}
		if h.ShowLanguageDialog, err = d.autoBool("show_language_dialog", b); err != nil {
			return err
		}
		b2, err := d.r.ReadU8("language_detection")
		if err != nil {
			return err
		}
		detection, ok := languageDetectionFromRepr(b2)
		if !ok {
			if err := d.enumError("language_detection", b2); err != nil {
				return err
			}
		}
		h.LanguageDetection = detection
	}

	if v.AtLeast(5, 3, 9) {
		b, err := d.r.ReadU8("compression")
		if err != nil {
			return err
		}
		compression, ok := compressionFromRepr(b)
		if !ok {
			if err := d.enumError("compression", b); err != nil {
				return err
			}
		}
		h.Compression = compression
	}
	return nil
}

func (d *decoder) legacyArchitectures() error {
	v := d.version
	h := d.h
	if v.Before(5, 1, 0) {
		h.ArchitecturesAllowed = ArchitectureSetAll
		h.ArchitecturesInstallIn64BitMode = ArchitectureSetAll
		return nil
	}
	if v.AtLeast(6, 3, 0) {
		return nil
	}
	allowedByte, err := d.r.ReadU8("architectures_allowed")
	if err != nil {
		return err
	}
	install64Byte, err := d.r.ReadU8("architectures_install_in_64_bit_mode")
	if err != nil {
		return err
	}
	h.ArchitecturesAllowed = StoredArchitecture(allowedByte).ToIdentifiers()
	h.ArchitecturesInstallIn64BitMode = StoredArchitecture(install64Byte).ToIdentifiers()
	return nil
}

// readFlags enrolls every flag whose predicate holds for the active
// version, in the canonical schedule order, then finalizes the
// bitstream read.
func (d *decoder) readFlags() (HeaderFlags, error) {
	v := d.version
	fr := NewFlagReader(d.r)

	fr.Add(FlagDisableStartupPrompt)
	if v.Before(5, 3, 10) {
		fr.Add(FlagUninstallable)
	}
	fr.Add(FlagCreateAppDir)
	if v.Before(5, 3, 3) {
		fr.Add(FlagDisableDirPage)
	}
	if v.Before(1, 3, 6) {
		fr.Add(FlagDisableDirExistsWarning)
	}
	if v.Before(5, 3, 3) {
		fr.Add(FlagDisableProgramGroupPage)
	}
	fr.Add(FlagAllowNoIcons)
	if v.Before(3, 0, 0) || v.AtLeast(3, 0, 3) {
		fr.Add(FlagAlwaysRestart)
	}
	if v.Before(1, 3, 3) {
		fr.Add(FlagBackSolid)
	}
	fr.Add(FlagAlwaysUsePersonalGroup)
	fr.Add(FlagWindowVisible)
	fr.Add(FlagWindowShowCaption)
	fr.Add(FlagWindowResizable)
	fr.Add(FlagWindowStartMaximised)
	fr.Add(FlagEnabledDirDoesntExistWarning)
	if v.Before(4, 1, 2) {
		fr.Add(FlagDisableAppendDir)
	}
	fr.Add(FlagPassword)
	if v.AtLeast(1, 2, 6) {
		fr.Add(FlagAllowRootDirectory)
	}
	if v.AtLeast(1, 2, 14) {
		fr.Add(FlagDisableFinishedPage)
	}
	if v.Before(3, 0, 4) {
		fr.Add(FlagAdminPrivilegesRequired)
	}
	if v.Before(3, 0, 0) {
		fr.Add(FlagAlwaysCreateUninstallIcon)
	}
	if v.Before(1, 3, 6) {
		fr.Add(FlagOverwriteUninstallRegEntries)
	}
	if v.Before(5, 6, 1) {
		fr.Add(FlagChangesAssociations)
	}
	if v.AtLeast(1, 3, 0) && v.Before(5, 3, 8) {
		fr.Add(FlagCreateUninstallRegKey)
	}
	if v.AtLeast(1, 3, 1) {
		fr.Add(FlagUsePreviousAppDir)
	}
	if v.AtLeast(1, 3, 3) {
		fr.Add(FlagBackColorHorizontal)
	}
	if v.AtLeast(1, 3, 10) {
		fr.Add(FlagUsePreviousGroup)
	}
	if v.AtLeast(1, 3, 20) {
		fr.Add(FlagUpdateUninstallLogAppName)
	}
	if v.AtLeast(2, 0, 0) || (v.IsISX && v.AtLeast(1, 3, 10)) {
		fr.Add(FlagUsePreviousSetupType)
	}
	if v.AtLeast(2, 0, 0) {
		fr.Add(FlagDisableReadyMemo)
		fr.Add(FlagAlwaysShowComponentsList)
		fr.Add(FlagFlatComponentsList)
		fr.Add(FlagShowComponentSizes)
		fr.Add(FlagUsePreviousTasks)
		fr.Add(FlagDisableReadyPage)
	}
	if v.AtLeast(2, 0, 7) {
		fr.Add(FlagAlwaysShowDirOnReadyPage)
		fr.Add(FlagAlwaysShowGroupOnReadyPage)
	}
	if v.AtLeast(2, 0, 17) && v.Before(4, 1, 5) {
		fr.Add(FlagBzipUsed)
	}
	if v.AtLeast(2, 0, 18) {
		fr.Add(FlagAllowUNCPath)
	}
	if v.AtLeast(3, 0, 0) {
		fr.Add(FlagUserInfoPage)
		fr.Add(FlagUsePreviousUserInfo)
	}
	if v.AtLeast(3, 0, 1) {
		fr.Add(FlagUninstallRestartComputer)
	}
	if v.AtLeast(3, 0, 3) {
		fr.Add(FlagRestartIfNeededByRun)
	}
	if v.AtLeast(4, 0, 0) || (v.IsISX && v.AtLeast(3, 0, 3)) {
		fr.Add(FlagShowTasksTreeLines)
	}
	if v.Before(4, 0, 10) {
		fr.Add(FlagShowLanguageDialog)
	}
	if v.AtLeast(4, 0, 1) && v.Before(4, 0, 10) {
		fr.Add(FlagDetectLanguageUsingLocale)
	}
	allowCancelDefaultOn := v.Before(4, 0, 9)
	if v.AtLeast(4, 0, 9) {
		fr.Add(FlagAllowCancelDuringInstall)
	}
	if v.AtLeast(4, 1, 3) {
		fr.Add(FlagWizardImageStretch)
	}
	if v.AtLeast(4, 1, 8) {
		fr.Add(FlagAppendDefaultDirName)
		fr.Add(FlagAppendDefaultGroupName)
	}
	if v.AtLeast(4, 2, 2) {
		fr.Add(FlagEncryptionUsed)
	}
	if v.AtLeast(5, 0, 4) && v.Before(5, 6, 1) {
		fr.Add(FlagChangesEnvironment)
	}
	if v.AtLeast(5, 1, 7) && !v.IsUnicode {
		fr.Add(FlagShowUndisplayableLanguages)
	}
	if v.AtLeast(5, 1, 13) {
		fr.Add(FlagSetupLogging)
	}
	if v.AtLeast(5, 2, 1) {
		fr.Add(FlagSignedUninstaller)
	}
	if v.AtLeast(5, 3, 8) {
		fr.Add(FlagUsePreviousLanguage)
	}
	if v.AtLeast(5, 3, 9) {
		fr.Add(FlagDisableWelcomePage)
	}
	allowNetworkDriveDefaultOn := v.Before(5, 5, 0)
	if v.AtLeast(5, 5, 0) {
		fr.Add(FlagCloseApplications)
		fr.Add(FlagRestartApplications)
		fr.Add(FlagAllowNetworkDrive)
	}
	if v.AtLeast(5, 5, 7) {
		fr.Add(FlagForceCloseApplications)
	}
	if v.AtLeast(6, 0, 0) {
		fr.Add(FlagAppNameHasConsts)
		fr.Add(FlagUsePreviousPrivileges)
		fr.Add(FlagWizardResizable)
	}
	if v.AtLeast(6, 3, 0) {
		fr.Add(FlagUninstallLogging)
	}

	flags, err := fr.Finalize()
	if err != nil {
		return 0, err
	}
	if allowCancelDefaultOn {
		flags |= FlagAllowCancelDuringInstall
	}
	if allowNetworkDriveDefaultOn {
		flags |= FlagAllowNetworkDrive
	}
	return flags, nil
}

// backfill derives the small set of fields that predate their own
// dedicated encoding from the flags bitstream just decoded. Kept as a
// distinct post-decode pass rather than scattered through the main
// schedule, per the design note: this keeps the raw decode a pure
// function of bytes and lets the back-fill be tested stand-alone.
func (d *decoder) backfill() {
	v := d.version
	h := d.h

	if v.Before(3, 0, 4) {
		h.PrivilegesRequired = privilegeLevelFromHeaderFlags(h.Flags)
	}
	if v.Before(4, 0, 10) {
		h.ShowLanguageDialog = autoBoolFromHeaderFlags(h.Flags, FlagShowLanguageDialog)
		h.LanguageDetection = languageDetectionFromHeaderFlags(h.Flags)
	}
	if v.Before(4, 1, 5) {
		h.Compression = compressionFromHeaderFlags(h.Flags)
	}
	if v.Before(5, 3, 3) {
		h.DisableDirPage = autoBoolFromHeaderFlags(h.Flags, FlagDisableDirPage)
		h.DisableProgramGroupPage = autoBoolFromHeaderFlags(h.Flags, FlagDisableProgramGroupPage)
	}
}

func (d *decoder) legacySizedText() error {
	h := d.h
	var err error
	if h.LicenseText, err = d.r.SizedEncodedString("license_text", d.legacyLicenseSize, Windows1252); err != nil {
		return err
	}
	if h.InfoBefore, err = d.r.SizedEncodedString("info_before", d.legacyInfoBeforeSize, Windows1252); err != nil {
		return err
	}
	if h.InfoAfter, err = d.r.SizedEncodedString("info_after", d.legacyInfoAfterSize, Windows1252); err != nil {
		return err
	}
	return nil
}

// enumError reports an unrecognised discriminant, honoring
// Options.StrictEnums: fatal by default, tolerated (caller gets the
// enum's zero value, already assigned by the caller) when false.
func (d *decoder) enumError(field string, value byte) error {
	if d.opts.StrictEnums {
		return &InvalidEnumError{Version: d.version, Field: field, Value: value}
	}
	d.opts.logger().Warn("tolerating unrecognised enum discriminant", "field", field, "value", value)
	return nil
}

func (d *decoder) autoBool(field string, value byte) (AutoBool, error) {
	ab, ok := autoBoolFromRepr(value)
	if !ok {
		if err := d.enumError(field, value); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return ab, nil
}

func (d *decoder) installVerbosity(value byte) (InstallVerbosity, error) {
	iv, ok := installVerbosityFromRepr(value)
	if !ok {
		if err := d.enumError("install_verbosity", value); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return iv, nil
}

func (d *decoder) logMode(value byte) (LogMode, error) {
	lm, ok := logModeFromRepr(value)
	if !ok {
		if err := d.enumError("uninstall_log_mode", value); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return lm, nil
}
