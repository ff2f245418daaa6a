// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

// HeaderFlags is a bitset over the 65 boolean setup options Inno Setup
// calls HeaderFlags. Bit positions here are a stable Go-side numbering
// private to this package; they are unrelated to the position a flag
// happens to occupy in the on-disk bitstream for any particular version
// (see FlagReader). Only flags the decode schedule actually enrolls for
// the active version are ever populated.
type HeaderFlags uint64

// HeaderFlags bits, in the canonical schedule order from spec.md §6.
const (
	FlagDisableStartupPrompt HeaderFlags = 1 << iota
	FlagUninstallable
	FlagCreateAppDir
	FlagDisableDirPage
	FlagDisableDirExistsWarning
	FlagDisableProgramGroupPage
	FlagAllowNoIcons
	FlagAlwaysRestart
	FlagBackSolid
	FlagAlwaysUsePersonalGroup
	FlagWindowVisible
	FlagWindowShowCaption
	FlagWindowResizable
	FlagWindowStartMaximised
	FlagEnabledDirDoesntExistWarning
	FlagDisableAppendDir
	FlagPassword
	FlagAllowRootDirectory
	FlagDisableFinishedPage
	FlagAdminPrivilegesRequired
	FlagAlwaysCreateUninstallIcon
	FlagOverwriteUninstallRegEntries
	FlagChangesAssociations
	FlagCreateUninstallRegKey
	FlagUsePreviousAppDir
	FlagBackColorHorizontal
	FlagUsePreviousGroup
	FlagUpdateUninstallLogAppName
	FlagUsePreviousSetupType
	FlagDisableReadyMemo
	FlagAlwaysShowComponentsList
	FlagFlatComponentsList
	FlagShowComponentSizes
	FlagUsePreviousTasks
	FlagDisableReadyPage
	FlagAlwaysShowDirOnReadyPage
	FlagAlwaysShowGroupOnReadyPage
	FlagBzipUsed
	FlagAllowUNCPath
	FlagUserInfoPage
	FlagUsePreviousUserInfo
	FlagUninstallRestartComputer
	FlagRestartIfNeededByRun
	FlagShowTasksTreeLines
	FlagShowLanguageDialog
	FlagDetectLanguageUsingLocale
	FlagAllowCancelDuringInstall
	FlagWizardImageStretch
	FlagAppendDefaultDirName
	FlagAppendDefaultGroupName
	FlagEncryptionUsed
	FlagChangesEnvironment
	FlagShowUndisplayableLanguages
	FlagSetupLogging
	FlagSignedUninstaller
	FlagUsePreviousLanguage
	FlagDisableWelcomePage
	FlagCloseApplications
	FlagRestartApplications
	FlagAllowNetworkDrive
	FlagForceCloseApplications
	FlagAppNameHasConsts
	FlagUsePreviousPrivileges
	FlagWizardResizable
	FlagUninstallLogging
)

// Has reports whether bit is set in f.
func (f HeaderFlags) Has(bit HeaderFlags) bool { return f&bit != 0 }

var headerFlagNames = map[HeaderFlags]string{
	FlagDisableStartupPrompt:         "DisableStartupPrompt",
	FlagUninstallable:                "Uninstallable",
	FlagCreateAppDir:                 "CreateAppDir",
	FlagDisableDirPage:               "DisableDirPage",
	FlagDisableDirExistsWarning:      "DisableDirExistsWarning",
	FlagDisableProgramGroupPage:      "DisableProgramGroupPage",
	FlagAllowNoIcons:                 "AllowNoIcons",
	FlagAlwaysRestart:                "AlwaysRestart",
	FlagBackSolid:                    "BackSolid",
	FlagAlwaysUsePersonalGroup:       "AlwaysUsePersonalGroup",
	FlagWindowVisible:                "WindowVisible",
	FlagWindowShowCaption:            "WindowShowCaption",
	FlagWindowResizable:              "WindowResizable",
	FlagWindowStartMaximised:         "WindowStartMaximised",
	FlagEnabledDirDoesntExistWarning: "EnabledDirDoesntExistWarning",
	FlagDisableAppendDir:             "DisableAppendDir",
	FlagPassword:                     "Password",
	FlagAllowRootDirectory:           "AllowRootDirectory",
	FlagDisableFinishedPage:          "DisableFinishedPage",
	FlagAdminPrivilegesRequired:      "AdminPrivilegesRequired",
	FlagAlwaysCreateUninstallIcon:    "AlwaysCreateUninstallIcon",
	FlagOverwriteUninstallRegEntries: "OverwriteUninstallRegEntries",
	FlagChangesAssociations:          "ChangesAssociations",
	FlagCreateUninstallRegKey:        "CreateUninstallRegKey",
	FlagUsePreviousAppDir:            "UsePreviousAppDir",
	FlagBackColorHorizontal:          "BackColorHorizontal",
	FlagUsePreviousGroup:             "UsePreviousGroup",
	FlagUpdateUninstallLogAppName:    "UpdateUninstallLogAppName",
	FlagUsePreviousSetupType:         "UsePreviousSetupType",
	FlagDisableReadyMemo:             "DisableReadyMemo",
	FlagAlwaysShowComponentsList:     "AlwaysShowComponentsList",
	FlagFlatComponentsList:           "FlatComponentsList",
	FlagShowComponentSizes:           "ShowComponentSizes",
	FlagUsePreviousTasks:             "UsePreviousTasks",
	FlagDisableReadyPage:             "DisableReadyPage",
	FlagAlwaysShowDirOnReadyPage:     "AlwaysShowDirOnReadyPage",
	FlagAlwaysShowGroupOnReadyPage:   "AlwaysShowGroupOnReadyPage",
	FlagBzipUsed:                     "BzipUsed",
	FlagAllowUNCPath:                 "AllowUNCPath",
	FlagUserInfoPage:                 "UserInfoPage",
	FlagUsePreviousUserInfo:          "UsePreviousUserInfo",
	FlagUninstallRestartComputer:     "UninstallRestartComputer",
	FlagRestartIfNeededByRun:         "RestartIfNeededByRun",
	FlagShowTasksTreeLines:           "ShowTasksTreeLines",
	FlagShowLanguageDialog:           "ShowLanguageDialog",
	FlagDetectLanguageUsingLocale:    "DetectLanguageUsingLocale",
	FlagAllowCancelDuringInstall:     "AllowCancelDuringInstall",
	FlagWizardImageStretch:           "WizardImageStretch",
	FlagAppendDefaultDirName:         "AppendDefaultDirName",
	FlagAppendDefaultGroupName:       "AppendDefaultGroupName",
	FlagEncryptionUsed:               "EncryptionUsed",
	FlagChangesEnvironment:           "ChangesEnvironment",
	FlagShowUndisplayableLanguages:   "ShowUndisplayableLanguages",
	FlagSetupLogging:                 "SetupLogging",
	FlagSignedUninstaller:            "SignedUninstaller",
	FlagUsePreviousLanguage:          "UsePreviousLanguage",
	FlagDisableWelcomePage:           "DisableWelcomePage",
	FlagCloseApplications:            "CloseApplications",
	FlagRestartApplications:          "RestartApplications",
	FlagAllowNetworkDrive:            "AllowNetworkDrive",
	FlagForceCloseApplications:       "ForceCloseApplications",
	FlagAppNameHasConsts:             "AppNameHasConsts",
	FlagUsePreviousPrivileges:        "UsePreviousPrivileges",
	FlagWizardResizable:              "WizardResizable",
	FlagUninstallLogging:             "UninstallLogging",
}

// String lists the set flag names, for debugging and JSON-adjacent dumps.
func (f HeaderFlags) String() string {
	if f == 0 {
		return "none"
	}
	out := ""
	for bit := HeaderFlags(1); bit != 0; bit <<= 1 {
		if !f.Has(bit) {
			continue
		}
		name, ok := headerFlagNames[bit]
		if !ok {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	return out
}

// PrivilegesRequiredOverrides is a small retain-unknown-bits bitfield (the
// source's TypeFlags-style bitfields tolerate bit patterns that post-date
// the reader, unlike the C-style enums decoded via FromRepr).
type PrivilegesRequiredOverrides uint8

// Known PrivilegesRequiredOverrides bits.
const (
	PrivilegesRequiredOverrideCommandLine PrivilegesRequiredOverrides = 1 << 0
	PrivilegesRequiredOverrideDialog      PrivilegesRequiredOverrides = 1 << 1
)

// Has reports whether bit is set, ignoring any bits this package doesn't
// name (retain-unknown-bits semantics).
func (p PrivilegesRequiredOverrides) Has(bit PrivilegesRequiredOverrides) bool { return p&bit != 0 }
