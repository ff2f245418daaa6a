// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	inno "github.com/pkgforge/innohdr"
	"github.com/pkgforge/innohdr/internal/logx"
)

var jsonOut bool

var dumpCmd = &cobra.Command{
	Use:   "dump <installer>",
	Short: "Decode and print an installer's SETUP.HDR",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&jsonOut, "json", false, "output the decoded header as JSON")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	opts := inno.Options{
		StrictEnums: !tolerantEnums,
		Logger:      logx.ForVerbosity(verbose),
	}

	f, err := inno.Open(args[0], opts)
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	header, err := f.Parse()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	if jsonOut {
		return printJSON(header)
	}
	printHeader(header)
	return nil
}

func printHeader(h *inno.Header) {
	fmt.Printf("version:              %s\n", h.Version)
	printStringField("app name", h.AppName)
	printStringField("app versioned name", h.AppVersionedName)
	printStringField("app id", h.AppID)
	printStringField("app version", h.AppVersion)
	printStringField("app publisher", h.AppPublisher)
	printStringField("app publisher url", h.AppPublisherURL)
	fmt.Printf("architectures allowed: %s\n", h.ArchitecturesAllowed)
	fmt.Printf("architectures disallowed: %s\n", h.ArchitecturesDisallowed)
	fmt.Printf("install in 64-bit mode: %s\n", h.ArchitecturesInstallIn64BitMode)
	fmt.Printf("compression:           %d\n", h.Compression)
	fmt.Printf("privileges required:   %d\n", h.PrivilegesRequired)
	fmt.Printf("language count:        %d\n", h.LanguageCount)
	fmt.Printf("file count:            %d\n", h.FileCount)
	fmt.Printf("flags:                 %s\n", h.Flags)
}

func printStringField(label string, v *string) {
	if v == nil {
		fmt.Printf("%-22s <not present>\n", label+":")
		return
	}
	fmt.Printf("%-22s %s\n", label+":", *v)
}
