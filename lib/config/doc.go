// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for dbshell.
//
// Configuration comes from at most one file, named by the --config
// flag or, failing that, the DBSHELL_CONFIG environment variable.
// There is no directory search: with neither set, [Default] values are
// used as-is. Files ending in .json or .jsonc are parsed as JSON with
// comments and trailing commas allowed; anything else is parsed as
// YAML. Values present in the file override the defaults; absent
// values keep them.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No environment
// variable overrides a config value directly.
//
// Key exports:
//
//   - [Config] -- prompt, banner, history, database, and logging settings
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other dbshell packages.
package config
