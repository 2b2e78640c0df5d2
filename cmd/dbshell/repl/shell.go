// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/dbshell/cmd/dbshell/cli"
	"github.com/bureau-foundation/dbshell/cmd/dbshell/commands"
	"github.com/bureau-foundation/dbshell/lib/clock"
	"github.com/bureau-foundation/dbshell/lib/history"
)

// Shell is the read-dispatch loop.
type Shell struct {
	// Router resolves and runs each line.
	Router *cli.Router

	// Session supplies the prompt's database name and the .timer
	// setting.
	Session *commands.Session

	// History records every non-blank line. May be nil.
	History *history.Store

	// Prompt is the prompt text without the trailing "> ".
	Prompt string

	// Output receives "Run Time:" lines.
	Output io.Writer

	// Logger receives diagnostics. May be nil.
	Logger *slog.Logger

	// Clock timestamps history entries and times each line. Nil means
	// clock.Real().
	Clock clock.Clock
}

// Run reads and dispatches lines until input ends, a command asks to
// exit, or ctx is cancelled. It returns the process exit code. A read
// failure other than end of input is returned as an error.
func (s *Shell) Run(ctx context.Context, reader LineReader) (int, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeSource := s.Clock
	if timeSource == nil {
		timeSource = clock.Real()
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		reader.SetPrompt(s.prompt())
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			logger.Debug("end of input")
			return 0, nil
		}
		if err != nil {
			return 1, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		start := timeSource.Now()
		dispatchErr := s.Router.Dispatch(line)
		elapsed := timeSource.Since(start)

		if s.History != nil {
			s.History.Add(history.Entry{Line: line, At: start, Elapsed: elapsed})
		}
		if s.Session != nil && s.Session.Timer {
			fmt.Fprintln(s.Output, commands.FormatRunTime(elapsed))
		}

		var exitErr *cli.ExitError
		if errors.As(dispatchErr, &exitErr) {
			return exitErr.Code, nil
		}
		if dispatchErr != nil {
			return 1, dispatchErr
		}
	}
}

// prompt renders "<prompt>> " or, with a database attached,
// "<prompt> (<name>)> ".
func (s *Shell) prompt() string {
	if s.Session != nil && s.Session.Attached() {
		return fmt.Sprintf("%s (%s)> ", s.Prompt, s.Session.DisplayName())
	}
	return s.Prompt + "> "
}
