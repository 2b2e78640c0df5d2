// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Prompt != "dbshell" {
		t.Errorf("expected prompt=dbshell, got %s", cfg.Prompt)
	}

	if !cfg.Banner {
		t.Error("expected banner=true")
	}

	if cfg.Database.PageSize != 4096 {
		t.Errorf("expected page_size=4096, got %d", cfg.Database.PageSize)
	}

	if cfg.History.Limit != 1000 {
		t.Errorf("expected history limit=1000, got %d", cfg.History.Limit)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_NoFileUsesExpandedDefaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")
	t.Setenv("HOME", "/home/tester")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.History.File != "/home/tester/.dbshell_history" {
		t.Errorf("expected history file=/home/tester/.dbshell_history, got %s", cfg.History.File)
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dbshell.yaml")
	configContent := `
prompt: sales
database:
  page_size: 8192
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Prompt != "sales" {
		t.Errorf("expected prompt=sales, got %s", cfg.Prompt)
	}
	if cfg.Database.PageSize != 8192 {
		t.Errorf("expected page_size=8192, got %d", cfg.Database.PageSize)
	}
	// Unset values keep their defaults.
	if cfg.History.Limit != 1000 {
		t.Errorf("expected history limit=1000, got %d", cfg.History.Limit)
	}
}

func TestLoad_ExplicitPathWinsOverEnvironment(t *testing.T) {
	directory := t.TempDir()
	fromEnvironment := filepath.Join(directory, "env.yaml")
	fromFlag := filepath.Join(directory, "flag.yaml")
	os.WriteFile(fromEnvironment, []byte("prompt: env\n"), 0644)
	os.WriteFile(fromFlag, []byte("prompt: flag\n"), 0644)
	t.Setenv(EnvironmentVariable, fromEnvironment)

	cfg, err := Load(fromFlag)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Prompt != "flag" {
		t.Errorf("expected prompt=flag, got %s", cfg.Prompt)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("DBSHELL_DATA", "")
	configPath := filepath.Join(t.TempDir(), "dbshell.yaml")

	configContent := `
prompt: inventory
banner: false

history:
  file: ${HOME}/.config/dbshell/history
  limit: 50

database:
  page_size: 1024
  attach: ${DBSHELL_DATA:-/srv/data}/inventory.db

logging:
  level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Prompt != "inventory" {
		t.Errorf("expected prompt=inventory, got %s", cfg.Prompt)
	}
	if cfg.Banner {
		t.Error("expected banner=false")
	}
	if cfg.History.File != "/home/tester/.config/dbshell/history" {
		t.Errorf("expected expanded history file, got %s", cfg.History.File)
	}
	if cfg.History.Limit != 50 {
		t.Errorf("expected history limit=50, got %d", cfg.History.Limit)
	}
	if cfg.Database.PageSize != 1024 {
		t.Errorf("expected page_size=1024, got %d", cfg.Database.PageSize)
	}
	if cfg.Database.Attach != "/srv/data/inventory.db" {
		t.Errorf("expected attach=/srv/data/inventory.db, got %s", cfg.Database.Attach)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level=debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dbshell.jsonc")

	configContent := `{
  // Shorter prompt for screen recordings.
  "prompt": "db",
  "history": {
    "limit": 0, /* no persistence */
  },
  "database": {"page_size": 512},
}
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Prompt != "db" {
		t.Errorf("expected prompt=db, got %s", cfg.Prompt)
	}
	if cfg.History.Limit != 0 {
		t.Errorf("expected history limit=0, got %d", cfg.History.Limit)
	}
	if cfg.Database.PageSize != 512 {
		t.Errorf("expected page_size=512, got %d", cfg.Database.PageSize)
	}
	if !cfg.Banner {
		t.Error("expected banner to keep its default of true")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	directory := t.TempDir()

	if _, err := LoadFile(filepath.Join(directory, "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badYAML := filepath.Join(directory, "bad.yaml")
	os.WriteFile(badYAML, []byte("prompt: [unterminated\n"), 0644)
	if _, err := LoadFile(badYAML); err == nil {
		t.Error("expected error for malformed YAML")
	}

	badJSON := filepath.Join(directory, "bad.json")
	os.WriteFile(badJSON, []byte(`{"prompt": 12}`), 0644)
	if _, err := LoadFile(badJSON); err == nil {
		t.Error("expected error for mistyped JSON")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Prompt = " "
	cfg.History.Limit = -1
	cfg.Database.PageSize = 65536
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	for _, want := range []string{
		"prompt is required",
		"history.limit must not be negative",
		"database.page_size must be between 1 and 65535",
		`logging.level: unknown log level "verbose"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %q:\n%v", want, err)
		}
	}
}

func TestValidate_PageSizeZero(t *testing.T) {
	cfg := Default()
	cfg.Database.PageSize = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for page_size=0")
	}
}

func TestValidate_HistoryFileRequired(t *testing.T) {
	cfg := Default()
	cfg.History.File = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty history file with positive limit")
	}

	cfg.History.Limit = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with history disabled: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, test := range tests {
		got, err := ParseLevel(test.input)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.input, got, test.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) = nil error, want error")
	}
}

func TestValidate_AcceptsEveryParsedLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "warning", "", "error"} {
		cfg := Default()
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with logging.level %q: %v", level, err)
		}
	}
}
