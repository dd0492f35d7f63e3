// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"testing"

	"github.com/AleutianAI/minimax/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseOpts mirrors the built-in defaults applied before argument parsing.
func baseOpts() Options {
	return Options{Range: search.Unbounded}
}

func TestParseArgsMinimal(t *testing.T) {
	opts, err := ParseArgs([]string{"tree.txt"}, baseOpts())
	require.NoError(t, err)

	assert.Equal(t, "tree.txt", opts.File)
	assert.False(t, opts.MaxPlayer)
	assert.False(t, opts.Verbose)
	assert.False(t, opts.Prune)
	assert.Equal(t, search.Unbounded, opts.Range)
}

func TestParseArgsAllFlags(t *testing.T) {
	opts, err := ParseArgs([]string{"max", "-v", "-ab", "-range", "7", "--json", "tree.txt"}, baseOpts())
	require.NoError(t, err)

	assert.True(t, opts.MaxPlayer)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.Prune)
	assert.Equal(t, 7, opts.Range)
	assert.True(t, opts.JSON)
	assert.Equal(t, "tree.txt", opts.File)
}

func TestParseArgsOrderDoesNotMatter(t *testing.T) {
	a, err := ParseArgs([]string{"max", "-v", "tree.txt"}, baseOpts())
	require.NoError(t, err)
	b, err := ParseArgs([]string{"tree.txt", "-v", "max"}, baseOpts())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParseArgsLastOccurrenceWins(t *testing.T) {
	opts, err := ParseArgs([]string{"max", "min", "max", "-range", "5", "-range", "9", "a.txt", "b.txt"}, baseOpts())
	require.NoError(t, err)

	assert.True(t, opts.MaxPlayer)
	assert.Equal(t, 9, opts.Range)
	assert.Equal(t, "b.txt", opts.File)
}

func TestParseArgsNegativeRangeUsesMagnitude(t *testing.T) {
	opts, err := ParseArgs([]string{"-range", "-12", "tree.txt"}, baseOpts())
	require.NoError(t, err)
	assert.Equal(t, 12, opts.Range)
}

func TestParseArgsBadRange(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing value", []string{"tree.txt", "-range"}},
		{"not a number", []string{"-range", "ten", "tree.txt"}},
		{"zero", []string{"-range", "0", "tree.txt"}},
		{"float", []string{"-range", "1.5", "tree.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args, baseOpts())
			assert.ErrorIs(t, err, errBadRange)
		})
	}
}

func TestParseArgsUnrecognizedToken(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-x", "tree.txt"}},
		{"bad file extension", []string{"tree.dat"}},
		{"path in file name", []string{"../tree.txt"}},
		{"stray word", []string{"maximum", "tree.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args, baseOpts())
			assert.ErrorIs(t, err, errBadArg)
		})
	}
}

func TestParseArgsNoFile(t *testing.T) {
	tests := [][]string{
		{},
		{"max", "-v"},
		{"min", "-ab", "-range", "3"},
	}

	for _, args := range tests {
		_, err := ParseArgs(args, baseOpts())
		assert.ErrorIs(t, err, errNoFile, "args %v", args)
	}
}

func TestParseArgsRangeErrorBeforeMissingFile(t *testing.T) {
	// Both problems present; the range error surfaces first.
	_, err := ParseArgs([]string{"-range", "oops"}, baseOpts())
	assert.ErrorIs(t, err, errBadRange)
}

func TestParseArgsOverridesDefaults(t *testing.T) {
	base := Options{MaxPlayer: true, Verbose: true, Range: 50}

	opts, err := ParseArgs([]string{"min", "tree.txt"}, base)
	require.NoError(t, err)

	assert.False(t, opts.MaxPlayer, "command line overrides the defaults file")
	assert.True(t, opts.Verbose, "untouched defaults survive")
	assert.Equal(t, 50, opts.Range)
}

func TestSearchConfigConversion(t *testing.T) {
	opts := Options{MaxPlayer: true, Verbose: true, Prune: true, Range: 9}
	cfg := opts.searchConfig()

	assert.Equal(t, search.Config{MaxPlayer: true, Verbose: true, Prune: true, Range: 9}, cfg)
}

func TestJSONRequested(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"present", []string{"--json", "tree.txt"}, true},
		{"present after bad token", []string{"bogus!", "--json"}, true},
		{"absent", []string{"max", "tree.txt"}, false},
		{"empty", nil, false},
		{"single dash is not it", []string{"-json", "tree.txt"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonRequested(tt.args))
		})
	}
}

func TestArgErrorWording(t *testing.T) {
	_, err := ParseArgs([]string{"bogus!"}, baseOpts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one or more incorrect arguments were passed")

	_, err = ParseArgs([]string{"-range", "x", "t.txt"}, baseOpts())
	require.True(t, errors.Is(err, errBadRange))
	assert.Equal(t, "incorrect range argument passed", errBadRange.Error())

	_, err = ParseArgs(nil, baseOpts())
	require.True(t, errors.Is(err, errNoFile))
	assert.Equal(t, "no input file specified", errNoFile.Error())
}
