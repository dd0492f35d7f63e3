// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AleutianAI/minimax/pkg/search"
	"github.com/AleutianAI/minimax/pkg/validation"
)

// Options holds the fully resolved command configuration: defaults
// file first, then command-line arguments, last occurrence wins.
type Options struct {
	// MaxPlayer selects the root player role (default min).
	MaxPlayer bool

	// Verbose traces every evaluated node, not just the root.
	Verbose bool

	// Prune enables alpha-beta pruning.
	Prune bool

	// Range is the absolute magnitude bound for leaf values and the
	// cutoff. search.Unbounded when no -range was given.
	Range int

	// JSON wraps the result in a machine-readable envelope.
	JSON bool

	// Debug enables debug logging to stderr.
	Debug bool

	// File is the validated tree description file name.
	File string
}

// Argument-surface errors, worded as the classic tool reported them.
var (
	errBadRange = errors.New("incorrect range argument passed")
	errBadArg   = errors.New("one or more incorrect arguments were passed")
	errNoFile   = errors.New("no input file specified")
)

// ParseArgs resolves the raw command-line tokens on top of base.
//
// Recognized tokens: `max`, `min`, `-v`, `-ab`, `-range N`, `--json`,
// `--debug`, and exactly one tree file name (alphanumeric/underscore
// plus .txt). Repeated tokens are legal; the last occurrence wins,
// including for the file name. Anything else aborts with a usage error.
func ParseArgs(args []string, base Options) (Options, error) {
	opts := base
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "max":
			opts.MaxPlayer = true
		case "min":
			opts.MaxPlayer = false
		case "-v":
			opts.Verbose = true
		case "-ab":
			opts.Prune = true
		case "--json":
			opts.JSON = true
		case "--debug":
			opts.Debug = true
		case "-range":
			i++
			if i >= len(args) {
				return Options{}, errBadRange
			}
			n, err := strconv.Atoi(args[i])
			if err != nil || n == 0 {
				return Options{}, errBadRange
			}
			if n < 0 {
				n = -n
			}
			opts.Range = n
		default:
			if err := validation.ValidateTreeFileName(args[i]); err != nil {
				return Options{}, fmt.Errorf("%w: %v", errBadArg, err)
			}
			opts.File = args[i]
		}
	}
	if opts.File == "" {
		return Options{}, errNoFile
	}
	return opts, nil
}

// jsonRequested reports whether --json appears anywhere in the raw
// arguments. Used to pick the error format when argument parsing itself
// fails and no resolved Options exist yet.
func jsonRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--json" {
			return true
		}
	}
	return false
}

// searchConfig converts the resolved options into an evaluator config.
func (o Options) searchConfig() search.Config {
	return search.Config{
		MaxPlayer: o.MaxPlayer,
		Prune:     o.Prune,
		Range:     o.Range,
		Verbose:   o.Verbose,
	}
}
