// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package treefile

import "fmt"

// MalformedLineError reports a directive that matched a grammar but
// could not be parsed.
type MalformedLineError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Text is the offending line, already whitespace-trimmed.
	Text string

	// Reason describes what failed.
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// OutOfRangeError reports a leaf value outside the configured magnitude
// bound. Raised while parsing, before any tree construction.
type OutOfRangeError struct {
	// Name is the leaf the value was assigned to.
	Name string

	// Value is the out-of-range value.
	Value int

	// Bound is the symmetric magnitude limit in force.
	Bound int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("input values are out of range: %s=%d exceeds bound %d", e.Name, e.Value, e.Bound)
}
