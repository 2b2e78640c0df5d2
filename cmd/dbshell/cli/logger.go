// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the structured logger for shell diagnostics.
// When stderr is a terminal, uses slog.TextHandler for human-readable
// output. When stderr is piped or redirected (scripts, CI), uses
// slog.JSONHandler for machine-parseable output.
//
// The logger is for diagnostics (dispatch timing, failures, config
// decisions) and defaults to warn level; user-facing command output
// never goes through it.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
