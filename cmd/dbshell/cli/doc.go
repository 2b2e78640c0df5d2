// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command-resolution core of dbshell: it turns one
// line of user input into exactly one outcome (nothing, global help,
// per-command help, command execution, or an unknown-command report).
//
// The central types are [Command], the capability every shell command
// exposes (name, one-line description, help text, execute), [Registry],
// an insertion-ordered list of commands grouped into display
// categories, and [Router], which dispatches input lines against a
// registry. [Definition] is the struct most commands are written as.
//
// Command names may contain spaces ("ATTACH DATABASE") and may start
// with a marker character ('.', as in ".exit"). The router matches the
// longest canonical name at the start of the line, case-insensitively,
// ending on a token boundary. Help lookups and suggestions compare
// normalized names instead: lowercased, with one leading marker
// removed (see [Normalize]).
//
// When nothing matches, the router computes Levenshtein edit distance
// against every normalized name and suggests the closest one within a
// distance of 3. If nothing is that close, an input of three or more
// characters that equals the first word of a multi-word command
// suggests that command instead. This is implemented in suggest.go.
//
// Execution errors are reported as "Command failed: ..." and swallowed;
// the router never stops the shell on a command's behalf. A command
// that wants the shell to end returns an [ExitError], which the router
// passes back to its caller untouched.
package cli
