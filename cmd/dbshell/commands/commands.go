// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the dbshell command registry: the system
// commands (".exit", ".help", ...) and the database commands
// ("ATTACH DATABASE", ...). Every command is constructed explicitly
// here; there is no discovery.
//
// Commands write to the writers in [Environment] rather than to
// os.Stdout, so the REPL can route output through the terminal and
// tests can capture it. The only command with mutable state of its own
// is ATTACH DATABASE, which records the attached file in the
// [Session]; the router never sees the session.
package commands

import (
	"io"
	"log/slog"

	"github.com/bureau-foundation/dbshell/cmd/dbshell/cli"
	"github.com/bureau-foundation/dbshell/lib/datafile"
	"github.com/bureau-foundation/dbshell/lib/history"
)

// Category labels, in display order.
const (
	SystemCategory   = "System commands"
	DatabaseCategory = "Database commands"
)

// Environment is what commands need from the shell around them.
type Environment struct {
	// Stdout receives normal command output.
	Stdout io.Writer

	// Stderr receives error reports.
	Stderr io.Writer

	// Session is updated by ATTACH DATABASE and DETACH DATABASE and
	// read by the prompt.
	Session *Session

	// History backs .history. May be nil, in which case .history
	// reports that no history is available.
	History *history.Store

	// PageSize is written into data files created by ATTACH
	// DATABASE. Zero means datafile.DefaultPageSize.
	PageSize int

	// Logger receives diagnostics. May be nil.
	Logger *slog.Logger
}

// Registry builds the complete command registry over env.
func Registry(env Environment) *cli.Registry {
	env = env.withDefaults()

	registry := cli.NewRegistry()
	registry.Add(SystemCategory,
		exitCommand(),
		helpCommand(env, registry),
		clearCommand(env),
		historyCommand(env),
		timerCommand(env),
		versionCommand(env),
	)
	registry.Add(DatabaseCategory,
		attachCommand(env),
		detachCommand(env),
		databaseInfoCommand(env),
	)
	return registry
}

func (env Environment) withDefaults() Environment {
	if env.Session == nil {
		env.Session = &Session{}
	}
	if env.PageSize == 0 {
		env.PageSize = datafile.DefaultPageSize
	}
	if env.Logger == nil {
		env.Logger = slog.New(slog.DiscardHandler)
	}
	return env
}
