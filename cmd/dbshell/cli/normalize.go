// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "strings"

// Marker is the leading character that distinguishes shell-level
// commands (".exit", ".help") from database commands.
const Marker = '.'

// Normalize returns the comparison form of a command name: one leading
// Marker removed (interior markers are kept) and the rest lowercased.
// Normalized names are used for help lookup and suggestions only; they
// are never shown to the user.
func Normalize(name string) string {
	if len(name) > 0 && name[0] == Marker {
		name = name[1:]
	}
	return strings.ToLower(name)
}
