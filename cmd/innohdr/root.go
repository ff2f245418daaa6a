// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	tolerantEnums bool
)

var rootCmd = &cobra.Command{
	Use:   "innohdr",
	Short: "Decode Inno Setup installer headers",
	Long: `innohdr reads the SETUP.HDR structure embedded in Inno Setup
Windows installers and prints the decoded application identity,
architecture constraints, install options, and feature flags.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().
		BoolVar(&tolerantEnums, "tolerant", false, "substitute the zero value for an unrecognised enum discriminant instead of failing")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
