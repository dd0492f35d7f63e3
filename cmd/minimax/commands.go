// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"
)

// Flag parsing is disabled on both commands: the classic argument
// surface uses loose tokens (`max`, `min`) and single-dash long flags
// (`-ab`, `-range N`) that pflag would reject, so ParseArgs handles
// the raw arguments itself with last-occurrence-wins semantics.
var (
	rootCmd = &cobra.Command{
		Use:   "minimax [max|min] [-v] [-ab] [-range N] [--json] <file.txt>",
		Short: "Compute the minimax value of a game tree",
		Long: `minimax reads a textual game-tree description and computes its
minimax value, optionally with alpha-beta pruning (-ab) and per-node
decision tracing (-v). The root player defaults to min; pass max to
flip it. -range N bounds leaf values and enables the magnitude cutoff.`,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		Run:                runEvaluate, // Defined in cmd_eval.go
	}

	watchCmd = &cobra.Command{
		Use:   "watch [max|min] [-v] [-ab] [-range N] <file.txt>",
		Short: "Re-evaluate the tree whenever the input file changes",
		Long: `watch takes the same arguments as the bare command, evaluates the
tree once, and then re-evaluates it every time the file is written.
Useful while hand-editing a tree. Stop with Ctrl-C.`,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		Run:                runWatch, // Defined in cmd_watch.go
	}
)
