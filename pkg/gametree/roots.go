// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gametree

// FindRoots returns every node that appears as a parent but never as a
// child, in first-seen parent declaration order.
//
// These are the evaluation root candidates: a well-formed tree has
// exactly one.
func FindRoots(relations *RelationMap) []string {
	childNodes := make(map[string]struct{})
	for _, parent := range relations.Parents() {
		for _, child := range relations.Children(parent) {
			childNodes[child] = struct{}{}
		}
	}

	var roots []string
	for _, parent := range relations.Parents() {
		if _, isChild := childNodes[parent]; !isChild {
			roots = append(roots, parent)
		}
	}
	return roots
}

// ResolveRoot returns the unique root of the relation graph.
//
// It fails with ErrNoRoot when every node is somebody's child, and with
// *MultipleRootsError when the graph has several disconnected tops.
func ResolveRoot(relations *RelationMap) (string, error) {
	roots := FindRoots(relations)
	switch len(roots) {
	case 0:
		return "", ErrNoRoot
	case 1:
		return roots[0], nil
	default:
		return "", &MultipleRootsError{Roots: roots}
	}
}
