// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search computes the minimax value of a game tree.
//
// Two evaluation policies are provided behind one entry point:
//
//   - plain minimax with a magnitude cutoff
//   - alpha-beta pruning with the same magnitude cutoff
//
// Both walk the tree in declared child order, alternate max/min roles by
// depth, and record one trace line per node describing which child it
// chose. Evaluation is a pure function: it returns the value and the
// trace, and reports bad input as an error instead of terminating the
// process from inside the recursion.
//
// # Cutoffs
//
// The magnitude cutoff and alpha-beta pruning are orthogonal. The
// magnitude cutoff stops scanning siblings as soon as a child reaches
// the configured bound (eval >= range at a max node, eval <= -range at a
// min node): a value at the bound is assumed globally decisive, so no
// sibling could matter. It triggers in both policies, including plain
// minimax. The alpha-beta cutoff (beta <= alpha) is the classical
// value-bound argument and only applies when pruning is enabled.
//
// # Determinism
//
// Ties always keep the earlier child: a sibling only displaces the
// current choice when it strictly improves on it. Traces are therefore
// reproducible for a given tree and configuration.
package search

import (
	"fmt"
	"math"

	"github.com/AleutianAI/minimax/pkg/gametree"
	"github.com/go-playground/validator/v10"
)

// Player identifies the role of a tree level.
type Player int

const (
	// Min levels choose the smallest child value.
	Min Player = iota

	// Max levels choose the largest child value.
	Max
)

// String returns "min" or "max".
func (p Player) String() string {
	if p == Max {
		return "max"
	}
	return "min"
}

// Unbounded is the default magnitude bound. No representable leaf value
// short of math.MaxInt can trigger a cutoff against it.
const Unbounded = math.MaxInt

// Config controls one evaluation pass.
//
// The zero value is not valid; use DefaultConfig as a base. Range is the
// symmetric magnitude bound and must be positive (callers pass the
// absolute value of whatever the user supplied).
type Config struct {
	// MaxPlayer makes the root a maximizing level. Roles alternate
	// at every level below it.
	MaxPlayer bool

	// Prune enables alpha-beta pruning. The magnitude cutoff applies
	// either way.
	Prune bool

	// Range is the symmetric magnitude bound used by the cutoff.
	Range int `validate:"min=1"`

	// Verbose records a trace line for every evaluated node instead
	// of only the root.
	Verbose bool
}

// DefaultConfig returns a Config for a minimizing root with no pruning
// and an effectively unbounded range.
func DefaultConfig() Config {
	return Config{Range: Unbounded}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	return validate.Struct(c)
}

var validate = validator.New()

// TraceRecord describes one node's decision. Records are immutable once
// appended to a trace.
type TraceRecord struct {
	// Player is the role of the deciding node.
	Player Player

	// Node is the deciding node's name.
	Node string

	// Chosen is the selected child's name.
	Chosen string

	// Value is the selected child's evaluated value.
	Value int
}

// String renders the record in the report format, e.g.
//
//	max(A) chooses C for 5
func (r TraceRecord) String() string {
	return fmt.Sprintf("%s(%s) chooses %s for %d", r.Player, r.Node, r.Chosen, r.Value)
}

// Result is the outcome of one evaluation pass.
type Result struct {
	// Value is the minimax value of the root.
	Value int

	// Trace holds the decision records in evaluation order.
	Trace []TraceRecord
}

// Evaluate computes the minimax value of root under cfg.
//
// The root's trace record is always emitted, regardless of Verbose and
// of pruning, since it carries the final answer. Any leaf reached
// without an assigned value aborts the whole pass with a
// *MissingValueError; there is no partial result.
func Evaluate(root *gametree.Node, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	e := &evaluator{cfg: cfg, originalRoot: root}
	var (
		value int
		err   error
	)
	if cfg.Prune {
		value, err = e.alphaBeta(root, nil, cfg.MaxPlayer, math.MinInt, math.MaxInt)
	} else {
		value, err = e.plain(root, nil, cfg.MaxPlayer)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value, Trace: e.trace}, nil
}

// evaluator threads the immutable pass context (original root, config)
// and owns the growing trace, instead of a process-wide accumulator.
type evaluator struct {
	cfg          Config
	originalRoot *gametree.Node
	trace        []TraceRecord
}

// leafValue resolves the base case for both policies.
func (e *evaluator) leafValue(node, parent *gametree.Node) (int, error) {
	if v, ok := node.Value(); ok {
		return v, nil
	}
	err := &MissingValueError{Leaf: node.Name}
	if parent != nil {
		err.Parent = parent.Name
	}
	return 0, err
}

// plain is minimax without pruning. The magnitude cutoff still applies:
// scanning stops as soon as a child reaches the configured bound.
func (e *evaluator) plain(node, parent *gametree.Node, isMax bool) (int, error) {
	if node.IsLeaf() {
		return e.leafValue(node, parent)
	}

	var chosenChild *gametree.Node
	chosenValue := worstFor(isMax)

	for _, child := range node.Children {
		eval, err := e.plain(child, node, !isMax)
		if err != nil {
			return 0, err
		}
		if (isMax && eval > chosenValue) || (!isMax && eval < chosenValue) {
			chosenChild = child
			chosenValue = eval
		}
		if (isMax && eval >= e.cfg.Range) || (!isMax && eval <= -e.cfg.Range) {
			break
		}
	}

	if e.cfg.Verbose || node == e.originalRoot {
		e.record(isMax, node, chosenChild, chosenValue)
	}
	return chosenValue, nil
}

// alphaBeta is minimax with classical pruning layered on top of the
// magnitude cutoff. A pruned node's trace line is suppressed unless the
// node is the original root.
func (e *evaluator) alphaBeta(node, parent *gametree.Node, isMax bool, alpha, beta int) (int, error) {
	if node.IsLeaf() {
		return e.leafValue(node, parent)
	}

	var chosenChild *gametree.Node
	pruned := false
	chosenValue := worstFor(isMax)

	for _, child := range node.Children {
		eval, err := e.alphaBeta(child, node, !isMax, alpha, beta)
		if err != nil {
			return 0, err
		}
		if isMax {
			if eval > chosenValue {
				chosenChild = child
				chosenValue = eval
			}
			alpha = max(alpha, eval)
			if eval >= e.cfg.Range {
				break
			}
		} else {
			if eval < chosenValue {
				chosenChild = child
				chosenValue = eval
			}
			beta = min(beta, eval)
			if eval <= -e.cfg.Range {
				break
			}
		}
		if beta <= alpha {
			pruned = true
			break
		}
	}

	if (!pruned && e.cfg.Verbose) || node == e.originalRoot {
		e.record(isMax, node, chosenChild, chosenValue)
	}
	return chosenValue, nil
}

func (e *evaluator) record(isMax bool, node *gametree.Node, chosen *gametree.Node, value int) {
	if chosen == nil {
		return
	}
	player := Min
	if isMax {
		player = Max
	}
	e.trace = append(e.trace, TraceRecord{
		Player: player,
		Node:   node.Name,
		Chosen: chosen.Name,
		Value:  value,
	})
}

// worstFor returns the identity element for the player's comparison.
func worstFor(isMax bool) int {
	if isMax {
		return math.MinInt
	}
	return math.MaxInt
}
