// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation utilities for
// user-supplied values that end up in file operations.
//
// The CLI accepts a tree file name straight from the command line;
// validating it here keeps path traversal and shell metacharacters out
// of the open call.
package validation

import (
	"fmt"
	"regexp"
)

// treeFileNamePattern matches accepted tree description file names:
// alphanumeric plus underscores, with a mandatory .txt extension.
// No directory separators, so the file must live in the working
// directory.
var treeFileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+\.txt$`)

// ValidateTreeFileName validates a tree description file name.
//
// Valid names:
//   - letters, digits, and underscores only
//   - a single ".txt" extension
//   - no path separators or traversal sequences
//
// Returns an error if the name is invalid.
//
// Example:
//
//	if err := validation.ValidateTreeFileName(name); err != nil {
//	    return fmt.Errorf("invalid input file: %w", err)
//	}
//	// Safe to open
func ValidateTreeFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}

	if !treeFileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid file name: %q (must be alphanumeric/underscore with a .txt extension)", name)
	}

	return nil
}
