// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package search

import "fmt"

// MissingValueError reports a leaf that was reached during evaluation
// without an assigned value.
//
// This is deliberately lazy: a malformed leaf that no evaluation path
// visits (for example behind a cutoff) is never reported. Parent is
// empty when the offending leaf is the evaluation root itself.
type MissingValueError struct {
	// Leaf is the name of the valueless leaf.
	Leaf string

	// Parent is the name of the node that reached the leaf, or ""
	// for the root.
	Parent string
}

// Error matches the classic diagnostic wording for non-root leaves:
//
//	child node "D" of "B" not found
func (e *MissingValueError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("root node %q has no assigned value", e.Leaf)
	}
	return fmt.Sprintf("child node %q of %q not found", e.Leaf, e.Parent)
}
