// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Router resolves input lines against a [Registry] and runs the
// matched command. Normal output (help listings, command help) goes to
// stdout; unknown-command reports, suggestions, and failures go to
// stderr.
//
// A Router is not safe for concurrent use.
type Router struct {
	registry *Registry
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
}

// NewRouter creates a router over registry. A nil logger discards
// diagnostics.
func NewRouter(registry *Registry, stdout, stderr io.Writer, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router{
		registry: registry,
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
	}
}

// Dispatch handles one line of input. Blank lines do nothing. A
// leading help token ("help", "--help", "-h", "?") prints the global
// help or the help of the named command. Otherwise the longest
// command name at the start of the line is executed with the
// remaining tokens as arguments; if any argument is a help token the
// command's help is printed instead.
//
// Command failures are reported to stderr as "Command failed: ..."
// and do not produce an error. The only non-nil return is an
// [*ExitError] from a command that asked the shell to stop.
func (r *Router) Dispatch(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	tokens := strings.Fields(trimmed)
	first, rest := tokens[0], tokens[1:]

	if isHelpToken(first) {
		r.dispatchHelp(rest)
		return nil
	}

	command, args, ok := r.Resolve(trimmed)
	if !ok {
		fmt.Fprintf(r.stderr, "Unknown command: %s\n", first)
		r.printSuggestion(first)
		return nil
	}

	for _, arg := range args {
		if isHelpToken(arg) {
			command.Help(r.stdout)
			return nil
		}
	}

	return r.execute(command, args)
}

// Resolve finds the command whose canonical name, compared without
// regard to case, is the longest match at the start of line and ends
// on a token boundary. It returns the command and the whitespace-split
// remainder of the line. Leading help tokens are not interpreted.
func (r *Router) Resolve(line string) (Command, []string, bool) {
	trimmed := strings.TrimSpace(line)

	var matched Command
	matchedLength := 0
	for _, command := range r.registry.Commands() {
		name := command.Name()
		if len(name) <= matchedLength || !hasNamePrefix(trimmed, name) {
			continue
		}
		matched = command
		matchedLength = len(name)
	}
	if matched == nil {
		return nil, nil, false
	}

	args := strings.Fields(trimmed[matchedLength:])
	return matched, args, true
}

// PrintHelp writes the global help listing to the router's stdout.
func (r *Router) PrintHelp() {
	r.registry.PrintHelp(r.stdout)
}

// dispatchHelp handles "help", "help <command>", and the other help
// token spellings. The target must equal a command's normalized name;
// there is no prefix matching.
func (r *Router) dispatchHelp(rest []string) {
	if len(rest) == 0 {
		r.PrintHelp()
		return
	}

	target := strings.Join(rest, " ")
	if command, ok := r.registry.Lookup(target); ok {
		command.Help(r.stdout)
		return
	}

	fmt.Fprintf(r.stderr, "Unknown command for help: %s\n", target)
	r.printSuggestion(rest[0])
}

// printSuggestion writes at most one "Did you mean" line for input, or
// a pointer to the help command when nothing is close.
func (r *Router) printSuggestion(input string) {
	if command, ok := suggestCommand(input, r.registry.Commands()); ok {
		fmt.Fprintf(r.stderr, "Did you mean: %s ?\n", command.Name())
		return
	}
	fmt.Fprintln(r.stderr, "Type 'help' to see the list of available commands.")
}

// execute runs command inside the failure boundary. Errors and panics
// are reported and swallowed; an ExitError is returned untouched.
func (r *Router) execute(command Command, args []string) error {
	start := time.Now()
	err := runCommand(command, args)
	elapsed := time.Since(start)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		r.logger.Debug("command requested exit",
			"command", command.Name(),
			"code", exitErr.Code,
		)
		return exitErr
	}

	if err != nil {
		fmt.Fprintf(r.stderr, "Command failed: %v\n", err)
		r.logger.Debug("command failed",
			"command", command.Name(),
			"args", len(args),
			"elapsed", elapsed,
			"error", err,
		)
		return nil
	}

	r.logger.Debug("command completed",
		"command", command.Name(),
		"args", len(args),
		"elapsed", elapsed,
	)
	return nil
}

// runCommand calls Execute, converting a panic into an error so that a
// misbehaving command cannot take down the input loop.
func runCommand(command Command, args []string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()
	return command.Execute(args)
}

// hasNamePrefix reports whether line starts with name, ignoring case,
// and the match ends at whitespace or the end of the line. "exit"
// therefore does not match "exitfoo".
func hasNamePrefix(line, name string) bool {
	if name == "" || len(line) < len(name) || !strings.EqualFold(line[:len(name)], name) {
		return false
	}
	if len(line) == len(name) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(line[len(name):])
	return unicode.IsSpace(next)
}

// isHelpToken reports whether token is one of the help spellings,
// ignoring case.
func isHelpToken(token string) bool {
	switch strings.ToLower(token) {
	case "help", "--help", "-h", "?":
		return true
	}
	return false
}
