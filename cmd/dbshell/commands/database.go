// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/dbshell/cmd/dbshell/cli"
	"github.com/bureau-foundation/dbshell/lib/datafile"
)

func attachCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: "ATTACH DATABASE",
		Summary:       "Attach a database file, creating it if needed",
		Details: `Resolves the path (~, relative paths, and file: URLs are accepted),
creates missing parent directories, and opens the file. A missing file
is created with a fresh header; an existing file must carry a valid
dbshell header. The file is locked while attached, so another shell
cannot attach it at the same time. On failure the previously attached
database, if any, stays attached.`,
		Usage: "ATTACH DATABASE <path|url>",
		Examples: []cli.Example{
			{Description: "Attach (or create) a file in the working directory", Command: "ATTACH DATABASE ./data/app.db"},
			{Description: "Attach by URL", Command: "ATTACH DATABASE file:///var/lib/app/app.db"},
		},
		Run: func(args []string) error {
			if len(args) == 0 || strings.HasPrefix(args[0], "-") {
				fmt.Fprintln(env.Stdout, "Usage: ATTACH DATABASE <path|url>")
				fmt.Fprintln(env.Stdout, "Example: ATTACH DATABASE ./data/app.db")
				return nil
			}

			AttachDatabase(env, strings.Join(args, " "))
			return nil
		},
	}
}

// AttachDatabase attaches the data file named by text, as typed by the
// user, and reports the outcome on env's writers. It is the body of
// ATTACH DATABASE without the argument handling, for callers that
// already hold the path text. It reports whether the session changed.
func AttachDatabase(env Environment, text string) bool {
	env = env.withDefaults()

	path, err := datafile.ResolvePath(text)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Failed to attach database: %v\n", err)
		return false
	}
	if err := datafile.EnsureParentDirectory(path); err != nil {
		fmt.Fprintf(env.Stderr, "Failed to attach database: %v\n", err)
		return false
	}

	status, err := datafile.EnsureDataFile(path, env.PageSize)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Failed to attach database: %v\n", err)
		return false
	}
	if !status.OK() {
		env.Logger.Debug("rejected data file", "path", path, "status", status)
		fmt.Fprintf(env.Stderr, "Invalid database file %s: %s\n", text, status.Reason())
		return false
	}

	// Re-attaching the current file keeps its lock; a second flock on
	// it would conflict with our own.
	var lock *datafile.Lock
	if path != env.Session.Path {
		lock, err = datafile.AcquireLock(path)
		if err != nil {
			fmt.Fprintf(env.Stderr, "Failed to attach database: %v\n", err)
			return false
		}
	}

	if err := env.Session.Attach(path, text, lock); err != nil {
		env.Logger.Warn("releasing previous database lock", "error", err)
	}
	env.Logger.Debug("attached data file", "path", path, "status", status)
	fmt.Fprintf(env.Stdout, "Attached database: %s\n", text)
	return true
}

func detachCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: "DETACH DATABASE",
		Summary:       "Detach the current database file",
		Details:       "The file itself is left untouched.",
		Run: func(args []string) error {
			if !env.Session.Attached() {
				fmt.Fprintln(env.Stdout, "No database attached.")
				return nil
			}
			name := env.Session.Name
			if err := env.Session.Detach(); err != nil {
				env.Logger.Warn("releasing database lock", "error", err)
			}
			fmt.Fprintf(env.Stdout, "Detached database: %s\n", name)
			return nil
		},
	}
}

func databaseInfoCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".dbinfo",
		Summary:       "Show the attached database's header",
		Run: func(args []string) error {
			if !env.Session.Attached() {
				fmt.Fprintln(env.Stdout, "No database attached.")
				return nil
			}

			header, status, err := datafile.ReadHeader(env.Session.Path)
			if err != nil {
				return err
			}
			if !status.OK() {
				return fmt.Errorf("%s: %s", env.Session.Name, status.Reason())
			}

			fmt.Fprintf(env.Stdout, "Database:  %s\n", env.Session.Name)
			fmt.Fprintf(env.Stdout, "Path:      %s\n", env.Session.Path)
			fmt.Fprintf(env.Stdout, "Format:    %s\n", header.Magic)
			fmt.Fprintf(env.Stdout, "Page size: %d\n", header.PageSize)
			return nil
		},
	}
}
