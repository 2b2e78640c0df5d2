// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package repl runs the dbshell input loop.
//
// A [Shell] reads lines from a [LineReader], hands each one to the
// command router, records it in the history store, and prints the
// .timer line when enabled. The loop ends at end of input (exit code
// 0) or when a command returns a [cli.ExitError].
//
// Two readers are provided. [OpenTerminal] puts an interactive
// terminal into raw mode and edits lines with golang.org/x/term, which
// handles cursor movement, in-session history recall, and Ctrl-D;
// Ctrl-C clears the line being edited rather than ending the session.
// [NewScanner] reads newline-separated input from a pipe or file
// without echoing a prompt, so scripted sessions produce only command
// output.
package repl
