// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package gametree

import (
	"errors"
	"fmt"
	"strings"
)

// Structural validation failures. All of them are fatal to a run: the
// evaluator never sees a graph that failed root or cycle validation.
var (
	// ErrNoRoot means every declared node is referenced as a child,
	// so no evaluation root exists.
	ErrNoRoot = errors.New("invalid input: no root found")

	// ErrCycle means some node is reachable from itself through the
	// relation graph.
	ErrCycle = errors.New("invalid input: tree contains a cycle")
)

// MultipleRootsError reports a relation graph with more than one root.
//
// Roots preserves first-seen declaration order so the diagnostic is
// deterministic for a given input file.
type MultipleRootsError struct {
	Roots []string
}

// Error formats the root list oxford-comma style:
//
//	multiple roots: "A" and "B"
//	multiple roots: "A", "B", and "C"
func (e *MultipleRootsError) Error() string {
	quoted := make([]string, len(e.Roots))
	for i, r := range e.Roots {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	var list string
	switch len(quoted) {
	case 0:
		list = ""
	case 1:
		list = quoted[0]
	case 2:
		list = quoted[0] + " and " + quoted[1]
	default:
		list = strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
	}
	return "multiple roots: " + list
}
