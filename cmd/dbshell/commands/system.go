// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/dbshell/cmd/dbshell/cli"
	"github.com/bureau-foundation/dbshell/lib/version"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// defaultHistoryCount is how many entries .history lists without an
// argument.
const defaultHistoryCount = 20

func exitCommand() *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".exit",
		Summary:       "Exit the shell",
		Details: `Saves the command history and leaves the shell. An optional
numeric argument sets the process exit code (default 0).
Ctrl-D at an empty prompt does the same.`,
		Usage: ".exit [code]",
		Examples: []cli.Example{
			{Description: "Exit with a failure code from a script", Command: ".exit 1"},
		},
		Run: func(args []string) error {
			code := 0
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid exit code %q", args[0])
				}
				code = parsed
			}
			return &cli.ExitError{Code: code}
		},
	}
}

func helpCommand(env Environment, registry *cli.Registry) *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".help",
		Summary:       "List available commands",
		Details:       `Same as typing "help". Use "help <command>" for details on one command.`,
		Run: func(args []string) error {
			registry.PrintHelp(env.Stdout)
			return nil
		},
	}
}

func clearCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".clear",
		Summary:       "Clear the screen",
		Run: func(args []string) error {
			fmt.Fprint(env.Stdout, clearScreen)
			return nil
		},
	}
}

func historyCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".history",
		Summary:       "Show recent command history",
		Details: fmt.Sprintf(`Lists the most recent input lines with the time each was entered
and how long it took. Lists %d entries unless a count is given;
a count of 0 lists everything kept.`, defaultHistoryCount),
		Usage: ".history [count]",
		Examples: []cli.Example{
			{Description: "Show the last five lines", Command: ".history 5"},
		},
		Run: func(args []string) error {
			count := defaultHistoryCount
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 0 {
					return fmt.Errorf("invalid history count %q", args[0])
				}
				count = parsed
			}

			if env.History == nil || env.History.Len() == 0 {
				fmt.Fprintln(env.Stdout, "No history.")
				return nil
			}

			entries := env.History.Last(count)
			first := env.History.Len() - len(entries) + 1
			numberWidth := len(strconv.Itoa(env.History.Len()))
			for i, entry := range entries {
				// Lines are shown with terminal escape sequences removed so a
				// pasted control sequence cannot repaint the screen on replay.
				line := ansi.Strip(entry.Line)
				fmt.Fprintf(env.Stdout, "%*d  %s  %s",
					numberWidth, first+i, entry.At.Local().Format("2006-01-02 15:04:05"), line)
				if entry.Elapsed > 0 {
					fmt.Fprintf(env.Stdout, "  (%s)", formatElapsed(entry.Elapsed))
				}
				fmt.Fprintln(env.Stdout)
			}
			return nil
		},
	}
}

func timerCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".timer",
		Summary:       "Show how long each command takes",
		Details:       `With "on", prints "Run Time: <duration>" after every input line.`,
		Usage:         ".timer on|off",
		Run: func(args []string) error {
			if len(args) == 0 {
				state := "off"
				if env.Session.Timer {
					state = "on"
				}
				fmt.Fprintf(env.Stdout, "Timer is %s.\n", state)
				return nil
			}

			switch strings.ToLower(args[0]) {
			case "on", "true", "1":
				env.Session.Timer = true
			case "off", "false", "0":
				env.Session.Timer = false
			default:
				fmt.Fprintln(env.Stdout, "Usage: .timer on|off")
			}
			return nil
		},
	}
}

func versionCommand(env Environment) *cli.Definition {
	return &cli.Definition{
		CanonicalName: ".version",
		Summary:       "Show version information",
		Run: func(args []string) error {
			fmt.Fprintf(env.Stdout, "dbshell %s\n", version.Full())
			return nil
		},
	}
}
