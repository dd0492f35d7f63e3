// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package gametree models a rooted game tree described by flat
// parent/child relations and leaf value assignments.
//
// The package is the structural half of the evaluator: it resolves the
// unique root of a relation graph, rejects cyclic input, and materializes
// the validated graph into an in-memory tree. Evaluation semantics live
// in pkg/search.
//
// # Data Model
//
// A tree description consists of two maps built from the input file:
//
//   - RelationMap: parent name -> ordered child names
//   - VariableMap: leaf name -> assigned integer value
//
// Neither map is mutated after parsing. Child order is significant
// everywhere: it drives evaluation order and tie-breaking downstream.
//
// # Lazy Leaf Validation
//
// A node that appears in a children list but has neither children nor an
// assigned value is not rejected here. The missing value only becomes an
// error if the evaluator actually visits that leaf.
package gametree

// RelationMap holds parent -> children relations in first-seen key order.
//
// Key order matters: when a graph has several roots the diagnostic must
// list them deterministically, so iteration follows the order in which
// parents were first declared.
type RelationMap struct {
	// order records parent names in first declaration order.
	order []string

	// children maps a parent name to its declared child names.
	children map[string][]string
}

// VariableMap maps a node name to its assigned leaf value.
type VariableMap map[string]int

// NewRelationMap returns an empty RelationMap.
func NewRelationMap() *RelationMap {
	return &RelationMap{children: make(map[string][]string)}
}

// Put records the children of parent, replacing any earlier declaration.
//
// A re-declared parent keeps its original position in key order.
func (m *RelationMap) Put(parent string, children []string) {
	if _, seen := m.children[parent]; !seen {
		m.order = append(m.order, parent)
	}
	m.children[parent] = children
}

// Children returns the declared children of name.
//
// A name never declared as a parent has zero children (implicit leaf).
func (m *RelationMap) Children(name string) []string {
	return m.children[name]
}

// Parents returns all declared parent names in first-seen order.
func (m *RelationMap) Parents() []string {
	return m.order
}

// Len returns the number of declared parents.
func (m *RelationMap) Len() int {
	return len(m.order)
}

// Node is one node of a materialized game tree.
//
// A node is a leaf iff it has no children. A leaf carries an assigned
// value only if the input declared one; Value reports whether it did.
type Node struct {
	// Name is the unique node identifier from the input.
	Name string

	// Children holds the owned child nodes in declaration order.
	Children []*Node

	value    int
	hasValue bool
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Value returns the assigned leaf value and whether one was assigned.
func (n *Node) Value() (int, bool) {
	return n.value, n.hasValue
}

// SetValue assigns a leaf value to the node.
func (n *Node) SetValue(v int) {
	n.value = v
	n.hasValue = true
}

// Build materializes the tree rooted at rootName.
//
// Children are attached in declaration order. A name present in the
// VariableMap gets its value assigned even when it also has children;
// a name with neither value nor children becomes a bare leaf whose
// missing value is only reported if evaluation reaches it.
//
// Build assumes the relation graph is acyclic from rootName. Run
// HasCycle first; Build on a cyclic graph does not terminate.
func Build(rootName string, relations *RelationMap, variables VariableMap) *Node {
	node := &Node{Name: rootName}
	if v, ok := variables[rootName]; ok {
		node.SetValue(v)
	}
	for _, childName := range relations.Children(rootName) {
		node.Children = append(node.Children, Build(childName, relations, variables))
	}
	return node
}
