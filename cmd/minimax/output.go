// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AleutianAI/minimax/pkg/ux"
)

// Exit codes for CLI commands.
const (
	CLIExitSuccess = 0 // Evaluation completed
	CLIExitError   = 2 // Bad arguments, bad input, or evaluation failure
)

// CommandResult wraps command output with metadata for --json mode.
type CommandResult struct {
	APIVersion string      `json:"api_version"`
	Command    string      `json:"command"`
	Timestamp  time.Time   `json:"timestamp"`
	DurationMs int64       `json:"duration_ms"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// EvalReport is the Data payload of a successful evaluation.
type EvalReport struct {
	Root  string   `json:"root"`
	Value int      `json:"value"`
	Trace []string `json:"trace"`
}

// OutputJSON writes structured data as indented JSON to stdout.
func OutputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// renderReport prints a successful evaluation in the selected format.
//
// Plain mode emits the trace lines bare, root line last, exactly as
// evaluation ordered them; nothing else goes to stdout.
func renderReport(jsonMode bool, cmd string, start time.Time, report *EvalReport) int {
	if jsonMode {
		result := CommandResult{
			APIVersion: "1.0",
			Command:    cmd,
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    true,
			Data:       report,
		}
		if err := OutputJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return CLIExitError
		}
		return CLIExitSuccess
	}

	for _, line := range report.Trace {
		fmt.Println(line)
	}
	return CLIExitSuccess
}

// renderError reports a failure in the selected format and returns the
// exit code to use.
func renderError(jsonMode bool, cmd string, start time.Time, err error) int {
	if jsonMode {
		result := CommandResult{
			APIVersion: "1.0",
			Command:    cmd,
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    false,
			Error:      err.Error(),
		}
		if encErr := OutputJSON(result); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
		}
		return CLIExitError
	}

	ux.Error(err.Error())
	return CLIExitError
}
