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

// HasCycle reports whether a directed cycle is reachable from start.
//
// The walk keeps an "on current path" set: a node is added on entry and
// removed on exit, so a node reachable twice through different acyclic
// paths (a reconverging diamond) is not a false positive. Only a node
// revisited while still on the path closes a cycle.
//
// A name absent from the relation map is treated as a childless leaf,
// never as an error at this stage.
func HasCycle(start string, relations *RelationMap) bool {
	return hasCycle(start, relations, make(map[string]struct{}))
}

func hasCycle(node string, relations *RelationMap, onPath map[string]struct{}) bool {
	if _, revisited := onPath[node]; revisited {
		return true
	}
	onPath[node] = struct{}{}
	for _, child := range relations.Children(node) {
		if hasCycle(child, relations, onPath) {
			return true
		}
	}
	delete(onPath, node)
	return false
}
