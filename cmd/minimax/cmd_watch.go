// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/AleutianAI/minimax/pkg/logging"
	"github.com/AleutianAI/minimax/pkg/ux"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce batches rapid editor writes into one re-evaluation.
const watchDebounce = 100 * time.Millisecond

// runWatch evaluates once, then re-evaluates on every write to the
// tree file until interrupted.
func runWatch(cmd *cobra.Command, args []string) {
	start := time.Now()

	opts, err := resolveOptions(args)
	if err != nil {
		os.Exit(renderError(jsonRequested(args), "watch", start, err))
	}

	logger := newLogger(opts)
	defer logger.Close()

	evaluateAndRender(opts, logger)

	// Watch the directory, not the file: editors that save via
	// rename+create would otherwise drop the watch.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		os.Exit(renderError(opts.JSON, "watch", start, err))
	}
	defer watcher.Close()

	dir := filepath.Dir(opts.File)
	if err := watcher.Add(dir); err != nil {
		os.Exit(renderError(opts.JSON, "watch", start, err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ux.Muted("watching " + opts.File + " (Ctrl-C to stop)")

	watchLoop(ctx, watcher.Events, watcher.Errors, opts.File, func() {
		evaluateAndRender(opts, logger)
	}, logger)
}

// watchLoop consumes file events until ctx is cancelled or the event
// channel closes, coalescing rapid writes so that a burst of saves
// triggers exactly one re-evaluation after watchDebounce of quiet.
//
// Events for other files in the watched directory and ops that do not
// change content (chmod) are ignored.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, fileName string, evaluate func(), logger *logging.Logger) {
	var debounce *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("tree file changed", "op", event.Op.String())
			if debounce == nil {
				debounce = time.AfterFunc(watchDebounce, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})
			} else {
				debounce.Reset(watchDebounce)
			}

		case <-pending:
			debounce = nil
			evaluate()

		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// evaluateAndRender runs one pass and reports it, but never exits:
// watch mode survives transient input errors while the file is being
// edited.
func evaluateAndRender(opts Options, logger *logging.Logger) {
	start := time.Now()
	report, err := evaluateFile(opts, logger)
	if err != nil {
		renderError(opts.JSON, "watch", start, err)
		return
	}
	renderReport(opts.JSON, "watch", start, report)
}
