// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package treefile parses the textual game-tree description format.
//
// The format is line oriented, one directive per line:
//
//	# comments start with a hash, blank lines are skipped
//	A: [B, C]     parent/children relation (brackets optional)
//	D: E,F        same thing without brackets
//	B=3           leaf value assignment
//
// A line may carry both an assignment and a relation; each half is
// applied to its map independently. Leaf values are bound-checked
// against the configured range while parsing, before any tree is built:
// a single out-of-range value fails the whole run.
package treefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AleutianAI/minimax/pkg/gametree"
)

// stripper removes whitespace and brackets from a children list.
var stripper = strings.NewReplacer(" ", "", "\t", "", "[", "", "]", "")

// Load reads and parses the tree description at path.
//
// bound is the symmetric magnitude limit for leaf values (pass
// search.Unbounded when no -range was given). File access failures are
// returned wrapped; the caller decides how to present them.
func Load(path string, bound int) (*gametree.RelationMap, gametree.VariableMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open tree file: %w", err)
	}
	defer f.Close()
	return Parse(f, bound)
}

// Parse reads a tree description from r.
//
// Directives are applied in order; a parent re-declared later replaces
// its earlier children list, and a leaf value re-assigned later wins.
func Parse(r io.Reader, bound int) (*gametree.RelationMap, gametree.VariableMap, error) {
	relations := gametree.NewRelationMap()
	variables := make(gametree.VariableMap)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "=") {
			name, value, err := parseAssignment(line, bound, lineNo)
			if err != nil {
				return nil, nil, err
			}
			variables[name] = value
		}

		if strings.Contains(line, ":") {
			parent, children, err := parseRelation(line, lineNo)
			if err != nil {
				return nil, nil, err
			}
			relations.Put(parent, children)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read tree file: %w", err)
	}

	return relations, variables, nil
}

// parseAssignment handles the `name=value` half of a line. The halves
// of a line matching both grammars are parsed independently, so a name
// or value here may still contain the other grammar's punctuation; such
// values fail the integer parse below.
func parseAssignment(line string, bound, lineNo int) (string, int, error) {
	parts := strings.SplitN(line, "=", 2)
	name := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])

	if name == "" {
		return "", 0, &MalformedLineError{Line: lineNo, Text: line, Reason: "assignment has no node name"}
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, &MalformedLineError{Line: lineNo, Text: line, Reason: fmt.Sprintf("bad integer %q", raw)}
	}
	if value > bound || value < -bound {
		return "", 0, &OutOfRangeError{Name: name, Value: value, Bound: bound}
	}
	return name, value, nil
}

// parseRelation handles the `parent: [c1, c2]` half of a line.
func parseRelation(line string, lineNo int) (string, []string, error) {
	parts := strings.SplitN(line, ":", 2)
	parent := strings.TrimSpace(parts[0])
	if parent == "" {
		return "", nil, &MalformedLineError{Line: lineNo, Text: line, Reason: "relation has no parent name"}
	}

	list := stripper.Replace(parts[1])
	if list == "" {
		// Legal: declares a parent with no children.
		return parent, nil, nil
	}

	var children []string
	for _, child := range strings.Split(list, ",") {
		if child == "" {
			continue
		}
		children = append(children, child)
	}
	return parent, children, nil
}
