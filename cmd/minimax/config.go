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
	"fmt"
	"os"

	"github.com/AleutianAI/minimax/pkg/search"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// defaultsFileName is looked up in the working directory. Command-line
// arguments override anything set here.
const defaultsFileName = ".minimax.yaml"

// Defaults mirrors the optional defaults file:
//
//	max_player: true
//	verbose: true
//	prune: false
//	range: 100
//	json: false
type Defaults struct {
	MaxPlayer bool `yaml:"max_player"`
	Verbose   bool `yaml:"verbose"`
	Prune     bool `yaml:"prune"`
	Range     int  `yaml:"range" validate:"omitempty,min=1"`
	JSON      bool `yaml:"json"`
}

var validateDefaults = validator.New()

// loadDefaults returns the base options: built-in defaults (min player,
// unbounded range) overlaid with the defaults file when one exists.
//
// A missing file is not an error. A malformed or invalid file is: a
// silently ignored defaults file would make runs hard to explain.
func loadDefaults(path string) (Options, error) {
	opts := Options{Range: search.Unbounded}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("read %s: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Options{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validateDefaults.Struct(d); err != nil {
		return Options{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	opts.MaxPlayer = d.MaxPlayer
	opts.Verbose = d.Verbose
	opts.Prune = d.Prune
	opts.JSON = d.JSON
	if d.Range != 0 {
		opts.Range = d.Range
	}
	return opts, nil
}
