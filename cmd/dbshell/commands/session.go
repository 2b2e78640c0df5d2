// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"path/filepath"

	"github.com/bureau-foundation/dbshell/lib/datafile"
)

// Session is the shell state that outlives a single command: the
// attached data file and the .timer setting. It is owned by the REPL
// and shared by pointer with the commands that change it.
type Session struct {
	// Path is the resolved absolute path of the attached data file,
	// or "" when nothing is attached.
	Path string

	// Name is the path text exactly as the user typed it.
	Name string

	// Timer enables "Run Time:" output after each line.
	Timer bool

	lock *datafile.Lock
}

// Attached reports whether a data file is attached.
func (s *Session) Attached() bool {
	return s.Path != ""
}

// Attach records path (resolved) and name (as typed) as the attached
// data file, replacing any previous one. The session takes ownership
// of lock and releases the previous file's lock. A nil lock keeps the
// current one, which is how the attached file is re-attached under a
// different name.
func (s *Session) Attach(path, name string, lock *datafile.Lock) error {
	var err error
	if lock != nil {
		err = s.lock.Release()
		s.lock = lock
	}
	s.Path = path
	s.Name = name
	return err
}

// Detach forgets the attached data file and releases its lock.
func (s *Session) Detach() error {
	err := s.lock.Release()
	s.lock = nil
	s.Path = ""
	s.Name = ""
	return err
}

// DisplayName is the short name used in the prompt: the base name of
// the attached file, or "" when nothing is attached.
func (s *Session) DisplayName() string {
	if !s.Attached() {
		return ""
	}
	return filepath.Base(s.Path)
}
