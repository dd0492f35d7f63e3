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
	"os"
	"time"

	"github.com/AleutianAI/minimax/pkg/gametree"
	"github.com/AleutianAI/minimax/pkg/logging"
	"github.com/AleutianAI/minimax/pkg/search"
	"github.com/AleutianAI/minimax/pkg/treefile"
	"github.com/AleutianAI/minimax/pkg/ux"
	"github.com/spf13/cobra"
)

// runEvaluate is the bare-command entry point: resolve options, run one
// evaluation pass, render, exit.
func runEvaluate(cmd *cobra.Command, args []string) {
	start := time.Now()

	opts, err := resolveOptions(args)
	if err != nil {
		os.Exit(renderError(jsonRequested(args), "eval", start, err))
	}

	logger := newLogger(opts)
	defer logger.Close()

	report, err := evaluateFile(opts, logger)
	if err != nil {
		os.Exit(renderError(opts.JSON, "eval", start, err))
	}
	os.Exit(renderReport(opts.JSON, "eval", start, report))
}

// resolveOptions merges the defaults file with command-line arguments
// and switches styled output off when the run is machine-consumed.
func resolveOptions(args []string) (Options, error) {
	base, err := loadDefaults(defaultsFileName)
	if err != nil {
		return Options{}, err
	}
	opts, err := ParseArgs(args, base)
	if err != nil {
		return Options{}, err
	}
	ux.SetPlain(opts.JSON)
	return opts, nil
}

// newLogger builds the command logger. Warn level by default so normal
// runs emit nothing but the evaluation output.
func newLogger(opts Options) *logging.Logger {
	level := logging.LevelWarn
	if opts.Debug {
		level = logging.LevelDebug
	}
	return logging.New(logging.Config{Level: level, Service: "cli"})
}

// evaluateFile runs the whole pipeline for one tree file: parse,
// resolve the root, reject cycles, build, evaluate.
//
// Validation is fail-fast and ordered: the file's leaf values are
// bound-checked while parsing, the root is resolved before any
// traversal, and cycles are rejected before the tree is materialized.
func evaluateFile(opts Options, logger *logging.Logger) (*EvalReport, error) {
	relations, variables, err := treefile.Load(opts.File, opts.Range)
	if err != nil {
		return nil, err
	}
	logger.Debug("tree file parsed",
		"file", opts.File,
		"parents", relations.Len(),
		"leaf_values", len(variables),
	)

	rootName, err := gametree.ResolveRoot(relations)
	if err != nil {
		return nil, err
	}
	logger.Debug("root resolved", "root", rootName)

	if gametree.HasCycle(rootName, relations) {
		return nil, gametree.ErrCycle
	}

	root := gametree.Build(rootName, relations, variables)

	result, err := search.Evaluate(root, opts.searchConfig())
	if err != nil {
		return nil, err
	}
	logger.Debug("evaluation finished",
		"value", result.Value,
		"trace_lines", len(result.Trace),
		"pruning", opts.Prune,
	)

	report := &EvalReport{Root: rootName, Value: result.Value, Trace: make([]string, 0, len(result.Trace))}
	for _, record := range result.Trace {
		report.Trace = append(report.Trace, record.String())
	}
	return report, nil
}
