// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datafile

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath converts user-supplied path text into a clean absolute
// path. It accepts:
//
//   - plain paths, relative to the working directory ("data/app.db",
//     "./app.db", "../shared/app.db")
//   - a leading "~" or "~/" for the user's home directory
//   - file: URLs ("file:///var/db/app.db", "file://localhost/var/db/app.db",
//     "file:app.db"), percent-decoded; a host other than localhost is
//     rejected
//
// A single pair of matching surrounding quotes is removed first. Any
// other URL scheme is rejected.
func ResolvePath(text string) (string, error) {
	path := unquote(strings.TrimSpace(text))
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if scheme, rest, ok := strings.Cut(path, ":"); ok && isURLScheme(scheme) {
		if !strings.EqualFold(scheme, "file") {
			return "", fmt.Errorf("unsupported URL scheme %q", scheme)
		}
		parsed, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("parsing %q: %w", text, err)
		}
		if parsed.Host != "" && !strings.EqualFold(parsed.Host, "localhost") {
			return "", fmt.Errorf("file URL %q names host %q", text, parsed.Host)
		}
		switch {
		case parsed.Path != "":
			path = parsed.Path
		case parsed.Opaque != "":
			path, err = url.PathUnescape(parsed.Opaque)
			if err != nil {
				return "", fmt.Errorf("parsing %q: %w", text, err)
			}
		default:
			return "", fmt.Errorf("file URL %q has no path", rest)
		}
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", text, err)
	}
	return absolute, nil
}

// EnsureParentDirectory creates the directory that will hold path.
func EnsureParentDirectory(path string) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", directory, err)
	}
	return nil
}

// isURLScheme reports whether s looks like a URL scheme: a letter
// followed by letters, digits, '+', '-' or '.'. Single letters are
// excluded so that Windows drive letters ("C:") are treated as paths.
func isURLScheme(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
