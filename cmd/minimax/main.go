// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command minimax evaluates the minimax value of a game tree described
// in a text file.
//
//	minimax max -v -range 10 tree.txt
//	minimax min -ab -v tree.txt
//	minimax watch max -v tree.txt
//
// The tree file declares parent/child relations (`A: [B, C]`) and leaf
// values (`B=3`). Output is one trace line per reported decision and
// the root line last; --json wraps the result in a machine-readable
// envelope.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Argument-level failures; command bodies handle their own
		// errors and exit codes.
		os.Exit(CLIExitError)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	cobra.EnableCommandSorting = false
}
