// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when no --config flag is
// given.
const EnvironmentVariable = "DBSHELL_CONFIG"

// Config is the complete dbshell configuration.
type Config struct {
	// Prompt is the text shown before "> " at the input line.
	// Default: dbshell
	Prompt string `yaml:"prompt" json:"prompt"`

	// Banner enables the welcome banner on interactive start.
	// Default: true
	Banner bool `yaml:"banner" json:"banner"`

	// History configures persisted command history.
	History HistoryConfig `yaml:"history" json:"history"`

	// Database configures data files created by ATTACH DATABASE.
	Database DatabaseConfig `yaml:"database" json:"database"`

	// Logging configures diagnostic logging.
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// HistoryConfig configures persisted command history.
type HistoryConfig struct {
	// File is the history file path.
	// Default: ${HOME}/.dbshell_history
	File string `yaml:"file" json:"file"`

	// Limit is the number of entries kept. Zero disables persistence.
	// Default: 1000
	Limit int `yaml:"limit" json:"limit"`
}

// DatabaseConfig configures data files.
type DatabaseConfig struct {
	// PageSize is written into the header of newly created files.
	// Must be between 1 and 65535.
	// Default: 4096
	PageSize int `yaml:"page_size" json:"page_size"`

	// Attach is a data file to attach at startup, as if typed after
	// ATTACH DATABASE. A path given on the command line takes
	// precedence. Default: none
	Attach string `yaml:"attach" json:"attach"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `yaml:"level" json:"level"`
}

// Default returns the default configuration. These values apply when
// no config file is given, and as the base that a config file
// overrides.
func Default() *Config {
	return &Config{
		Prompt: "dbshell",
		Banner: true,
		History: HistoryConfig{
			File:  "${HOME}/.dbshell_history",
			Limit: 1000,
		},
		Database: DatabaseConfig{
			PageSize: 4096,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from path, or from the file named by
// DBSHELL_CONFIG when path is empty. With neither, the expanded
// defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": homeDirectory(),
	}

	c.History.File = expandVars(c.History.File, vars)
	c.Database.Attach = expandVars(c.Database.Attach, vars)
}

func homeDirectory() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Prompt) == "" {
		errs = append(errs, fmt.Errorf("prompt is required"))
	}

	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit))
	}
	if c.History.Limit > 0 && c.History.File == "" {
		errs = append(errs, fmt.Errorf("history.file is required when history.limit is positive"))
	}

	if c.Database.PageSize < 1 || c.Database.PageSize > 65535 {
		errs = append(errs, fmt.Errorf("database.page_size must be between 1 and 65535, got %d", c.Database.PageSize))
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ParseLevel converts a level name (debug, info, warn or warning,
// error; case insensitive) to a slog.Level. An empty name is warn.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", name)
	}
}
