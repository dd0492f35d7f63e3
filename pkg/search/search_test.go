// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"errors"
	"testing"

	"github.com/AleutianAI/minimax/pkg/gametree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Fixtures
// =============================================================================

// buildTree materializes a tree from flat relation/value maps, the way
// the CLI pipeline does after validation.
func buildTree(t *testing.T, root string, relations map[string][]string, order []string, values map[string]int) *gametree.Node {
	t.Helper()
	m := gametree.NewRelationMap()
	for _, parent := range order {
		m.Put(parent, relations[parent])
	}
	return gametree.Build(root, m, values)
}

// traceLines renders a trace for compact comparison.
func traceLines(trace []TraceRecord) []string {
	lines := make([]string, len(trace))
	for i, r := range trace {
		lines[i] = r.String()
	}
	return lines
}

// =============================================================================
// Plain Minimax
// =============================================================================

func TestEvaluateMaxRootPicksLargestChild(t *testing.T) {
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": 3, "C": 5},
	)

	result, err := Evaluate(root, Config{MaxPlayer: true, Range: 10})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Value)
	assert.Equal(t, []string{"max(A) chooses C for 5"}, traceLines(result.Trace))
}

func TestEvaluateAlternatesPlayersByDepth(t *testing.T) {
	// min(A) over {max(B) over {1, 9}, 4} = min(9, 4) = 4
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}, "B": {"D", "E"}},
		[]string{"A", "B"},
		map[string]int{"D": 1, "E": 9, "C": 4},
	)

	result, err := Evaluate(root, Config{Range: Unbounded, Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Value)
	assert.Equal(t, []string{
		"max(B) chooses E for 9",
		"min(A) chooses C for 4",
	}, traceLines(result.Trace))
}

func TestEvaluateRootIsAlwaysTracedWithoutVerbose(t *testing.T) {
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}, "B": {"D", "E"}},
		[]string{"A", "B"},
		map[string]int{"D": 1, "E": 9, "C": 4},
	)

	result, err := Evaluate(root, Config{Range: Unbounded})
	require.NoError(t, err)

	// Interior nodes are silent; only the root reports.
	assert.Equal(t, []string{"min(A) chooses C for 4"}, traceLines(result.Trace))
}

func TestEvaluateTieKeepsEarlierChild(t *testing.T) {
	tests := []struct {
		name      string
		maxPlayer bool
	}{
		{"max root", true},
		{"min root", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := buildTree(t, "A",
				map[string][]string{"A": {"B", "C"}},
				[]string{"A"},
				map[string]int{"B": 5, "C": 5},
			)

			result, err := Evaluate(root, Config{MaxPlayer: tt.maxPlayer, Range: Unbounded})
			require.NoError(t, err)

			require.Len(t, result.Trace, 1)
			assert.Equal(t, "B", result.Trace[0].Chosen)
			assert.Equal(t, 5, result.Value)
		})
	}
}

func TestMagnitudeCutoffStopsSiblingScanAtMaxNode(t *testing.T) {
	// C has no value; reaching it would be fatal. B hits the bound
	// exactly, so scanning must stop before C.
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": 10},
	)

	result, err := Evaluate(root, Config{MaxPlayer: true, Range: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, result.Value)
}

func TestMagnitudeCutoffStopsSiblingScanAtMinNode(t *testing.T) {
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": -10},
	)

	result, err := Evaluate(root, Config{Range: 10})
	require.NoError(t, err)
	assert.Equal(t, -10, result.Value)
}

func TestMagnitudeCutoffAppliesWithoutPruning(t *testing.T) {
	// The bound triggers in plain minimax too: C=9 is never seen, so
	// max(A) keeps B even though C would lose anyway (B=7 >= range 7).
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": 7, "C": 9},
	)

	result, err := Evaluate(root, Config{MaxPlayer: true, Range: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Value)
	assert.Equal(t, []string{"max(A) chooses B for 7"}, traceLines(result.Trace))
}

// =============================================================================
// Alpha-Beta
// =============================================================================

func TestAlphaBetaAgreesWithPlainMinimax(t *testing.T) {
	relations := map[string][]string{
		"A": {"B", "C", "D"},
		"B": {"b1", "b2"},
		"C": {"c1", "c2", "c3"},
		"D": {"d1"},
	}
	order := []string{"A", "B", "C", "D"}
	values := map[string]int{
		"b1": 3, "b2": -2,
		"c1": 8, "c2": 1, "c3": -5,
		"d1": 0,
	}

	for _, maxPlayer := range []bool{true, false} {
		plainRoot := buildTree(t, "A", relations, order, values)
		plain, err := Evaluate(plainRoot, Config{MaxPlayer: maxPlayer, Range: Unbounded})
		require.NoError(t, err)

		abRoot := buildTree(t, "A", relations, order, values)
		ab, err := Evaluate(abRoot, Config{MaxPlayer: maxPlayer, Prune: true, Range: Unbounded})
		require.NoError(t, err)

		assert.Equal(t, plain.Value, ab.Value, "maxPlayer=%v", maxPlayer)
	}
}

func TestAlphaBetaPrunesAndSuppressesTrace(t *testing.T) {
	// max(A): L resolves to 5 first. Inside R (min), r1=3 already
	// bounds R below alpha, so r2 is never visited and R's trace
	// line is suppressed despite verbose.
	root := buildTree(t, "A",
		map[string][]string{"A": {"L", "R"}, "L": {"l1"}, "R": {"r1", "r2"}},
		[]string{"A", "L", "R"},
		map[string]int{"l1": 5, "r1": 3}, // r2 valueless: proof it is pruned
	)

	result, err := Evaluate(root, Config{MaxPlayer: true, Prune: true, Range: Unbounded, Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Value)
	assert.Equal(t, []string{
		"min(L) chooses l1 for 5",
		"max(A) chooses L for 5",
	}, traceLines(result.Trace))
}

func TestAlphaBetaRootStillTracedWhenNotVerbose(t *testing.T) {
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": 3, "C": 5},
	)

	result, err := Evaluate(root, Config{MaxPlayer: true, Prune: true, Range: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"max(A) chooses C for 5"}, traceLines(result.Trace))
}

func TestAlphaBetaMagnitudeCutoff(t *testing.T) {
	// Same lazy-sibling proof as the plain variant: C is valueless
	// but the bound stops the scan at B.
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": 10},
	)

	result, err := Evaluate(root, Config{MaxPlayer: true, Prune: true, Range: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, result.Value)
}

// =============================================================================
// Failures
// =============================================================================

func TestEvaluateMissingLeafValueIsFatal(t *testing.T) {
	root := buildTree(t, "A",
		map[string][]string{"A": {"B", "C"}},
		[]string{"A"},
		map[string]int{"B": 3},
	)

	// C has a higher value declared nowhere; min must visit it.
	_, err := Evaluate(root, Config{Range: Unbounded})

	var missing *MissingValueError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "C", missing.Leaf)
	assert.Equal(t, "A", missing.Parent)
	assert.Equal(t, `child node "C" of "A" not found`, missing.Error())
}

func TestEvaluateValuelessRootLeaf(t *testing.T) {
	root := &gametree.Node{Name: "A"}

	_, err := Evaluate(root, Config{Range: Unbounded})

	var missing *MissingValueError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "A", missing.Leaf)
	assert.Empty(t, missing.Parent)
}

func TestEvaluateRejectsNonPositiveRange(t *testing.T) {
	root := &gametree.Node{Name: "A"}
	root.SetValue(1)

	_, err := Evaluate(root, Config{Range: 0})
	assert.Error(t, err)
}

func TestEvaluateSingleValuedLeafRoot(t *testing.T) {
	root := &gametree.Node{Name: "A"}
	root.SetValue(42)

	result, err := Evaluate(root, Config{MaxPlayer: true, Range: Unbounded})
	require.NoError(t, err)
	assert.Equal(t, 42, result.Value)
	assert.Empty(t, result.Trace)
}

// =============================================================================
// Rendering
// =============================================================================

func TestTraceRecordString(t *testing.T) {
	tests := []struct {
		name   string
		record TraceRecord
		want   string
	}{
		{"max", TraceRecord{Player: Max, Node: "A", Chosen: "C", Value: 5}, "max(A) chooses C for 5"},
		{"min", TraceRecord{Player: Min, Node: "root", Chosen: "left", Value: -3}, "min(root) chooses left for -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.String())
		})
	}
}
