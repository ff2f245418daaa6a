// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture is a small byte-buffer builder for hand-assembling header
// fixtures in the exact order the decode schedule expects them.
type fixture struct {
	buf bytes.Buffer
}

func (f *fixture) u8(v byte) *fixture {
	f.buf.WriteByte(v)
	return f
}

func (f *fixture) u32(v uint32) *fixture {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	f.buf.Write(b[:])
	return f
}

func (f *fixture) u64(v uint64) *fixture {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	f.buf.Write(b[:])
	return f
}

func (f *fixture) raw(b []byte) *fixture {
	f.buf.Write(b)
	return f
}

func (f *fixture) zeros(n int) *fixture {
	f.buf.Write(make([]byte, n))
	return f
}

func (f *fixture) absentString() *fixture { return f.u32(0) }

func (f *fixture) win1252String(s string) *fixture {
	f.u32(uint32(len(s)))
	f.buf.WriteString(s)
	return f
}

// utf16LEString encodes an ASCII-only s as UTF-16LE, length-prefixed the
// same way Reader.EncodedString expects.
func (f *fixture) utf16LEString(s string) *fixture {
	f.u32(uint32(len(s) * 2))
	for _, r := range s {
		f.buf.WriteByte(byte(r))
		f.buf.WriteByte(0)
	}
	return f
}

func (f *fixture) bytes() []byte { return f.buf.Bytes() }

// TestDecode1210LegacySizedText exercises scenario 5: pre-1.3.0 license
// and info text is read via sizes captured in the legacy prologue, after
// everything else (including the flag bitstream) has been decoded.
func TestDecode1210LegacySizedText(t *testing.T) {
	v := New(1, 2, 10, false, false)

	f := &fixture{}
	f.u32(0) // prologue: discarded uncompressed header size

	// Identity block.
	f.absentString() // app_name
	f.absentString() // app_versioned_name
	f.absentString() // app_copyright
	f.absentString() // default_dir_name
	f.absentString() // default_group_name
	f.absentString() // uninstall_icon_name (< 3.0.0)
	f.absentString() // base_filename

	// Counts: directory..uninstall_run (10 always-present u32s).
	for i := 0; i < 10; i++ {
		f.u32(0)
	}

	// Legacy sizes.
	f.u32(12) // license_size
	f.u32(0)  // info_before_size
	f.u32(7)  // info_after_size

	// Windows version range: 20 bytes.
	f.zeros(20)

	// Colors: back_color, image_back_color.
	f.u32(0)
	f.u32(0)

	// Header checksum (CRC32, discarded).
	f.u32(0)

	// extra_disk_space_required (u32, pre-4.0.0).
	f.u32(0)

	// Flags bitstream: 23 flags enrolled at 1.2.10 -> ceil(23/8) = 3 bytes.
	f.zeros(3)

	// Legacy sized text.
	f.raw([]byte("Hello World!")) // license_text, 12 bytes
	// info_before_size == 0 -> no bytes.
	f.raw([]byte("Goodbye")) // info_after, 7 bytes

	r := NewReader(bytes.NewReader(f.bytes()), v)
	h, err := Decode(r, v, DefaultOptions())
	require.NoError(t, err)

	require.NotNil(t, h.LicenseText)
	assert.Equal(t, "Hello World!", *h.LicenseText)
	assert.Nil(t, h.InfoBefore)
	require.NotNil(t, h.InfoAfter)
	assert.Equal(t, "Goodbye", *h.InfoAfter)

	// Default-on flags predating their own enrolment threshold.
	assert.True(t, h.Flags.Has(FlagAllowCancelDuringInstall))
	assert.True(t, h.Flags.Has(FlagAllowNetworkDrive))

	// Pre-5.1.0 architecture default: the universal set.
	assert.Equal(t, ArchitectureSetAll, h.ArchitecturesAllowed)
}

// TestDecode301RestartPolicyYes exercises scenario 4: an AutoBool::Yes
// restart-policy byte (only present in [3,0,0)..(3,0,3)) sets
// ALWAYS_RESTART in the output flags.
func TestDecode301RestartPolicyYes(t *testing.T) {
	h := decode301WithRestartPolicy(t, byte(AutoBoolYes))
	assert.True(t, h.Flags.Has(FlagAlwaysRestart))
	assert.False(t, h.Flags.Has(FlagRestartIfNeededByRun))
}

// TestDecode301RestartPolicyAuto exercises the Auto branch of the same
// scenario: RESTART_IF_NEEDED_BY_RUN is set instead.
func TestDecode301RestartPolicyAuto(t *testing.T) {
	h := decode301WithRestartPolicy(t, byte(AutoBoolAuto))
	assert.False(t, h.Flags.Has(FlagAlwaysRestart))
	assert.True(t, h.Flags.Has(FlagRestartIfNeededByRun))
}

func decode301WithRestartPolicy(t *testing.T, restartByte byte) *Header {
	t.Helper()
	v := New(3, 0, 1, false, false)

	f := &fixture{}
	// No prologue (>= 1.3.0).

	// Identity block.
	f.absentString() // app_name
	f.absentString() // app_versioned_name
	f.absentString() // app_id (>= 1.3.0)
	f.absentString() // app_copyright
	f.absentString() // app_publisher
	f.absentString() // app_publisher_url
	f.absentString() // app_support_url
	f.absentString() // app_updates_url
	f.absentString() // app_version
	f.absentString() // default_dir_name
	f.absentString() // default_group_name
	// uninstall_icon_name skipped (not < 3.0.0)
	f.absentString() // base_filename
	// legacy text block (>= 1.3.0 && < 5.2.5)
	f.absentString() // license_text
	f.absentString() // info_before
	f.absentString() // info_after
	f.absentString() // uninstall_files_dir (>= 1.3.3)
	f.absentString() // uninstall_name (>= 1.3.6)
	f.absentString() // uninstall_icon
	f.absentString() // app_mutex (>= 1.3.14)
	f.absentString() // default_user_name (>= 3.0.0)
	f.absentString() // default_user_organisation

	// Lead bytes table: present for non-Unicode builds >= 2.0.6.
	f.zeros(32)

	// Counts.
	f.u32(0) // type_count
	f.u32(0) // component_count
	f.u32(0) // task_count
	for i := 0; i < 10; i++ {
		f.u32(0)
	}

	// Windows version range.
	f.zeros(20)

	// Colors/wizard.
	f.u32(0) // back_color
	f.u32(0) // back_color2 (>= 1.3.3)
	f.u32(0) // image_back_color (< 5.5.7)
	f.u32(0) // small_image_back_color

	// Header checksum (CRC32, < 4.2.0).
	f.u32(0)

	// Disk space / verbosity / privileges.
	f.u32(0)                           // extra_disk_space_required (u32, pre-4.0.0)
	f.u8(byte(InstallVerbosityNormal)) // install_verbosity
	f.u8(byte(LogModeAppend))          // uninstall_log_mode
	f.u8(byte(InnoStyleClassic))       // uninstall_style
	f.u8(byte(AutoBoolNo))             // dir_exists_warning

	// Restart policy byte under test.
	f.u8(restartByte)

	// Flags bitstream: 38 flags enrolled at 3.0.1 -> ceil(38/8) = 5 bytes.
	f.zeros(5)

	r := NewReader(bytes.NewReader(f.bytes()), v)
	h, err := Decode(r, v, DefaultOptions())
	require.NoError(t, err)
	return h
}

// TestReadFlagsDefaultOnBeforeDedicatedEncoding covers scenario 3 plus
// the analogous ALLOW_NETWORK_DRIVE default: both flags are forced on
// when decoding a version that predates their own enrolment threshold,
// regardless of what the (absent) bitstream says.
func TestReadFlagsDefaultOnBeforeDedicatedEncoding(t *testing.T) {
	v := New(4, 0, 8, false, true)
	r := NewReader(bytes.NewReader(make([]byte, 16)), v)
	d := &decoder{r: r, version: v, opts: DefaultOptions(), h: &Header{Version: v}}

	flags, err := d.readFlags()
	require.NoError(t, err)
	assert.True(t, flags.Has(FlagAllowCancelDuringInstall))
	assert.True(t, flags.Has(FlagAllowNetworkDrive))
}

// TestReadFlagsEnrolledFlagsAt550 covers scenario 2: at 5.5.0,
// CLOSE_APPLICATIONS/RESTART_APPLICATIONS/ALLOW_NETWORK_DRIVE are
// enrolled in the bitstream itself (rather than defaulted), and flags
// introduced only at 6.0.0+/6.3.0 must remain absent regardless of the
// bitstream's content.
func TestReadFlagsEnrolledFlagsAt550(t *testing.T) {
	v := New(5, 5, 0, false, true)
	r := NewReader(bytes.NewReader(bytes.Repeat([]byte{0xff}, 16)), v)
	d := &decoder{r: r, version: v, opts: DefaultOptions(), h: &Header{Version: v}}

	flags, err := d.readFlags()
	require.NoError(t, err)
	assert.True(t, flags.Has(FlagCloseApplications))
	assert.True(t, flags.Has(FlagRestartApplications))
	assert.True(t, flags.Has(FlagAllowNetworkDrive))
	assert.False(t, flags.Has(FlagUninstallLogging))
	assert.False(t, flags.Has(FlagWizardResizable))
}

// TestIdentityBlock561UTF16LEFields exercises identityBlock directly for a
// 5.6.1 Unicode build, where create_uninstall_registry_key, uninstallable,
// changes_environment and changes_associations are optional length-prefixed
// UTF-16LE strings rather than single-byte AutoBool enums. A wrong read
// shape here desyncs every field after it.
func TestIdentityBlock561UTF16LEFields(t *testing.T) {
	v := New(5, 6, 1, false, true)

	f := &fixture{}
	f.absentString() // app_name
	f.absentString() // app_versioned_name
	f.absentString() // app_id
	f.absentString() // app_copyright
	f.absentString() // app_publisher
	f.absentString() // app_publisher_url
	f.absentString() // app_support_phone
	f.absentString() // app_support_url
	f.absentString() // app_updates_url
	f.absentString() // app_version
	f.absentString() // default_dir_name
	f.absentString() // default_group_name
	f.absentString() // base_filename
	f.absentString() // uninstall_files_dir
	f.absentString() // uninstall_name
	f.absentString() // uninstall_icon
	f.absentString() // app_mutex
	f.absentString() // default_user_name
	f.absentString() // default_user_organisation
	f.absentString() // default_serial
	f.absentString() // app_readme_file
	f.absentString() // app_contact
	f.absentString() // app_comments
	f.absentString() // app_modify_path

	f.utf16LEString("Y") // create_uninstall_registry_key
	f.absentString()     // uninstallable
	f.absentString()     // close_applications_filter
	f.absentString()     // setup_mutex
	f.absentString()     // changes_environment
	f.utf16LEString("N") // changes_associations

	d := &decoder{
		r:       NewReader(bytes.NewReader(f.bytes()), v),
		version: v,
		opts:    DefaultOptions(),
		h:       &Header{Version: v},
	}
	require.NoError(t, d.identityBlock())

	require.NotNil(t, d.h.CreateUninstallRegistryKey)
	assert.Equal(t, "Y", *d.h.CreateUninstallRegistryKey)
	assert.Nil(t, d.h.Uninstallable)
	assert.Nil(t, d.h.CloseApplicationsFilter)
	assert.Nil(t, d.h.SetupMutex)
	assert.Nil(t, d.h.ChangesEnvironment)
	require.NotNil(t, d.h.ChangesAssociations)
	assert.Equal(t, "N", *d.h.ChangesAssociations)
}

// TestBackfillDerivesLegacyFields checks the post-decode back-fill pass
// in isolation, independent of the main decode schedule, per the design
// note that keeps it a distinct step.
func TestBackfillDerivesLegacyFields(t *testing.T) {
	v := New(3, 0, 0, false, false)
	d := &decoder{version: v, h: &Header{
		Version: v,
		Flags:   FlagAdminPrivilegesRequired | FlagBzipUsed,
	}}
	d.backfill()
	assert.Equal(t, PrivilegeLevelAdmin, d.h.PrivilegesRequired)
	assert.Equal(t, CompressionBZip, d.h.Compression)
	assert.Equal(t, AutoBoolNo, d.h.DisableDirPage)
}
