// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// dbshell is an interactive command shell for dbshell data files.
//
// Usage:
//
//	dbshell [flags] [data-file]
//
// With a terminal on stdin, dbshell prints a banner and reads commands
// with line editing. With piped input it reads one command per line and
// prints only command output. The -c flag runs the given commands
// instead of reading input. A data-file argument is attached before
// the first command, as by "ATTACH DATABASE <data-file>" but without
// interpreting the path as command arguments.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/dbshell/cmd/dbshell/cli"
	"github.com/bureau-foundation/dbshell/cmd/dbshell/commands"
	"github.com/bureau-foundation/dbshell/cmd/dbshell/repl"
	"github.com/bureau-foundation/dbshell/lib/config"
	"github.com/bureau-foundation/dbshell/lib/history"
	"github.com/bureau-foundation/dbshell/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		// .exit with a code, and flag errors already reported by
		// pflag, carry their own exit status.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath  string
	logLevel    string
	noBanner    bool
	historyFile string
	commands    []string
	showVersion bool
	attach      string
}

// parseOptions parses args. A nil options with a nil error means help
// was printed and the process should exit successfully.
func parseOptions(args []string, stderr io.Writer) (*options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("dbshell", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dbshell [flags] [data-file]\n\nFlags:\n%s", flagSet.FlagUsages())
	}
	flagSet.StringVar(&opts.configPath, "config", "", "configuration file (default $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flagSet.BoolVar(&opts.noBanner, "no-banner", false, "do not print the welcome banner")
	flagSet.StringVar(&opts.historyFile, "history-file", "", "history file (overrides config)")
	flagSet.StringArrayVarP(&opts.commands, "command", "c", nil, "run `command` and exit (repeatable)")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, nil
		}
		return nil, &cli.ExitError{Code: 2}
	}

	switch positional := flagSet.Args(); len(positional) {
	case 0:
	case 1:
		opts.attach = positional[0]
	default:
		return nil, fmt.Errorf("expected at most one data file, got %d arguments", len(positional))
	}
	return &opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil || opts == nil {
		return err
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "dbshell %s\n", version.Info())
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.historyFile != "" {
		cfg.History.File = opts.historyFile
	}
	if opts.noBanner {
		cfg.Banner = false
	}
	if opts.attach != "" {
		cfg.Database.Attach = opts.attach
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger := cli.NewCommandLogger(level)

	store := openHistory(cfg, logger)

	inputFile, isFile := stdin.(*os.File)
	interactive := len(opts.commands) == 0 && isFile && repl.IsTerminal(inputFile)

	var reader repl.LineReader
	switch {
	case len(opts.commands) > 0:
		reader = repl.NewScanner(strings.NewReader(strings.Join(opts.commands, "\n")))
	case interactive:
		terminal, err := repl.OpenTerminal(inputFile, stdout)
		if err != nil {
			return err
		}
		defer terminal.Close()
		// Raw mode disables output post-processing; the terminal
		// translates newlines for everything written through it.
		stdout, stderr = terminal, terminal
		reader = terminal
	default:
		reader = repl.NewScanner(stdin)
	}

	session := &commands.Session{}
	environment := commands.Environment{
		Stdout:   stdout,
		Stderr:   stderr,
		Session:  session,
		History:  store,
		PageSize: cfg.Database.PageSize,
		Logger:   logger,
	}
	registry := commands.Registry(environment)
	router := cli.NewRouter(registry, stdout, stderr, logger)

	if interactive && cfg.Banner {
		repl.WriteBanner(stdout, repl.Profile(true), version.Short())
	}
	if cfg.Database.Attach != "" {
		commands.AttachDatabase(environment, cfg.Database.Attach)
	}

	shell := &repl.Shell{
		Router:  router,
		Session: session,
		Prompt:  cfg.Prompt,
		Output:  stdout,
		Logger:  logger,
	}
	// One-shot commands are not recorded.
	if len(opts.commands) == 0 {
		shell.History = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code, runErr := shell.Run(ctx, reader)
	if err := store.Save(); err != nil {
		logger.Warn("saving history failed", "path", store.Path(), "error", err)
	}
	if err := session.Detach(); err != nil {
		logger.Warn("releasing database lock", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}

// openHistory opens the configured history file. A file that cannot be
// read is reported and replaced by an in-memory history so the shell
// still starts; the unreadable file is not overwritten.
func openHistory(cfg *config.Config, logger *slog.Logger) *history.Store {
	store, err := history.Open(cfg.History.File, cfg.History.Limit)
	if err == nil {
		return store
	}
	logger.Warn("history unavailable", "path", cfg.History.File, "error", err)
	store, _ = history.Open("", 0)
	return store
}
