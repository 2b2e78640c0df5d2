// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/dbshell/cmd/dbshell/cli"
	"github.com/bureau-foundation/dbshell/lib/config"
	"github.com/bureau-foundation/dbshell/lib/datafile"
	"github.com/bureau-foundation/dbshell/lib/history"
)

// runShell runs dbshell with an isolated history file and no ambient
// configuration.
func runShell(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")

	historyFile := filepath.Join(t.TempDir(), "history")
	args = append([]string{"--history-file", historyFile}, args...)

	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(input), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_OneShotCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	stdout, stderr, err := runShell(t, "", "-c", "ATTACH DATABASE "+path, "-c", ".dbinfo")
	if err != nil {
		t.Fatalf("run() error: %v (stderr %q)", err, stderr)
	}
	if !strings.Contains(stdout, "Attached database: "+path) {
		t.Errorf("stdout = %q, want attach confirmation", stdout)
	}
	if !strings.Contains(stdout, "Page size: 4096") {
		t.Errorf("stdout = %q, want .dbinfo output", stdout)
	}
	if strings.Contains(stdout, "Welcome") {
		t.Errorf("stdout = %q, banner printed without a terminal", stdout)
	}
}

func TestRun_ExitCode(t *testing.T) {
	_, _, err := runShell(t, "", "-c", ".exit 5", "-c", ".version")

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 5 {
		t.Fatalf("run() = %v, want exit code 5", err)
	}
}

func TestRun_PositionalDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startup.db")

	stdout, _, err := runShell(t, ".dbinfo\n", path)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout, "Attached database: "+path) || !strings.Contains(stdout, "Path:      "+path) {
		t.Errorf("stdout = %q, want startup attach and .dbinfo", stdout)
	}
	if _, status, err := datafile.ReadHeader(path); err != nil || !status.OK() {
		t.Errorf("ReadHeader() = %v, %v; want a valid data file", status, err)
	}
}

func TestRun_PipedInputRecordsHistory(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")
	historyFile := filepath.Join(t.TempDir(), "history")

	var stdout, stderr bytes.Buffer
	err := run([]string{"--history-file", historyFile},
		strings.NewReader("help\n\n.timer\n"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Available commands:") {
		t.Errorf("stdout = %q, want help listing", stdout.String())
	}

	store, err := history.Open(historyFile, 100)
	if err != nil {
		t.Fatalf("history.Open() error: %v", err)
	}
	entries := store.Last(0)
	if len(entries) != 2 || entries[0].Line != "help" || entries[1].Line != ".timer" {
		t.Errorf("history = %+v, want help and .timer", entries)
	}
}

func TestRun_DataFileNamesAreNotCommandArguments(t *testing.T) {
	directory := t.TempDir()
	t.Chdir(directory)

	for _, name := range []string{"-x.db", "?", "help"} {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, err := runShell(t, "", "-c", ".dbinfo", "--", name)
			if err != nil {
				t.Fatalf("run() error: %v (stderr %q)", err, stderr)
			}
			if !strings.Contains(stdout, "Attached database: "+name+"\n") {
				t.Errorf("stdout = %q, want %q attached", stdout, name)
			}
			if strings.Contains(stdout, "Usage:") {
				t.Errorf("stdout = %q, want no usage or help output", stdout)
			}
			if _, err := os.Stat(filepath.Join(directory, name)); err != nil {
				t.Errorf("data file not created: %v", err)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	directory := t.TempDir()
	configPath := filepath.Join(directory, "dbshell.yaml")
	content := "prompt: sales\ndatabase:\n  page_size: 512\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	path := filepath.Join(directory, "app.db")

	stdout, _, err := runShell(t, "", "--config", configPath, "-c", "ATTACH DATABASE "+path, "-c", ".dbinfo")
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout, "Page size: 512") {
		t.Errorf("stdout = %q, want configured page size", stdout)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dbshell.yaml")
	if err := os.WriteFile(configPath, []byte("database:\n  page_size: 70000\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, _, err := runShell(t, "", "--config", configPath)
	if err == nil || !strings.Contains(err.Error(), "page_size") {
		t.Errorf("run() error = %v, want page_size validation failure", err)
	}
}

func TestRun_Flags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "version", args: []string{"--version"}, wantOut: "dbshell "},
		{name: "help", args: []string{"--help"}, wantErr: "Usage: dbshell"},
		{name: "unknown flag", args: []string{"--frobnicate"}, wantCode: 2},
		{name: "bad log level", args: []string{"--log-level", "loud"}, wantCode: 1},
		{name: "warning log level", args: []string{"--log-level", "warning", "-c", ".timer"}, wantOut: "Timer is off."},
		{name: "two data files", args: []string{"a.db", "b.db"}, wantCode: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, stderr, err := runShell(t, "", test.args...)

			code := 0
			if err != nil {
				code = 1
				var exitErr *cli.ExitError
				if errors.As(err, &exitErr) {
					code = exitErr.Code
				}
			}
			if code != test.wantCode {
				t.Errorf("exit code = %d (err %v), want %d", code, err, test.wantCode)
			}
			if test.wantOut != "" && !strings.Contains(stdout, test.wantOut) {
				t.Errorf("stdout = %q, want %q", stdout, test.wantOut)
			}
			if test.wantErr != "" && !strings.Contains(stderr, test.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr, test.wantErr)
			}
		})
	}
}
