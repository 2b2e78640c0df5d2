// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package history persists the lines entered at the dbshell prompt.
//
// The history file is a CBOR sequence (RFC 8742) of [Entry] values,
// oldest first, encoded with lib/codec. Each entry records when the
// line was entered and how long it took to dispatch, so the file
// doubles as a coarse timing log.
//
// A [Store] keeps at most Limit entries in memory and on disk; older
// entries are dropped as new ones are added. The file is rewritten
// atomically on [Store.Save] (write to temporary file, fsync, rename)
// so a crash never leaves a half-written history behind. A truncated
// final entry, left by an older writer that crashed mid-append, is
// ignored on load.
package history

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bureau-foundation/dbshell/lib/codec"
)

// Entry is one line of input.
type Entry struct {
	// Line is the input exactly as entered, without the trailing
	// newline.
	Line string `cbor:"line"`

	// At is when the line was submitted.
	At time.Time `cbor:"at"`

	// Elapsed is how long the line took to resolve and execute.
	Elapsed time.Duration `cbor:"elapsed,omitempty"`
}

// Store is an in-memory history backed by a file. A Store with an
// empty path or a zero limit never touches the filesystem.
type Store struct {
	path    string
	limit   int
	entries []Entry
}

// Open loads the history file at path, keeping the newest limit
// entries. A missing file yields an empty store.
func Open(path string, limit int) (*Store, error) {
	store := &Store{path: path, limit: limit}
	if !store.persistent() {
		return store, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer file.Close()

	decoder := codec.NewDecoder(file)
	for {
		var entry Entry
		err := decoder.Decode(&entry)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading history file %s: %w", path, err)
		}
		store.entries = append(store.entries, entry)
	}
	store.trim()

	return store, nil
}

// Add appends an entry, dropping the oldest entries beyond the limit.
// Blank lines are not recorded.
func (s *Store) Add(entry Entry) {
	if entry.Line == "" {
		return
	}
	s.entries = append(s.entries, entry)
	s.trim()
}

// Len returns the number of entries held.
func (s *Store) Len() int {
	return len(s.entries)
}

// Last returns up to n of the newest entries, oldest first. A
// non-positive n returns every entry. The returned slice must not be
// modified.
func (s *Store) Last(n int) []Entry {
	if n <= 0 || n >= len(s.entries) {
		return s.entries
	}
	return s.entries[len(s.entries)-n:]
}

// Path returns the backing file path, or "" when persistence is off.
func (s *Store) Path() string {
	if !s.persistent() {
		return ""
	}
	return s.path
}

// Save atomically rewrites the history file with the current entries.
// The parent directory is created if needed.
func (s *Store) Save() error {
	if !s.persistent() {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	temporaryPath := s.path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating temporary history file: %w", err)
	}

	// Write, sync, close: in that order. If any step fails, remove the
	// temporary file and report the first error.
	encoder := codec.NewEncoder(file)
	for _, entry := range s.entries {
		if err := encoder.Encode(entry); err != nil {
			file.Close()
			os.Remove(temporaryPath)
			return fmt.Errorf("writing temporary history file: %w", err)
		}
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary history file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary history file: %w", err)
	}

	if err := os.Rename(temporaryPath, s.path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming history file into place: %w", err)
	}
	return nil
}

func (s *Store) persistent() bool {
	return s.path != "" && s.limit > 0
}

func (s *Store) trim() {
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = append(s.entries[:0:0], s.entries[len(s.entries)-s.limit:]...)
	}
}
