// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(darwin || linux)

package datafile

// Lock is a placeholder on platforms without flock; attaching never
// conflicts.
type Lock struct {
	path string
}

// AcquireLock always succeeds.
func AcquireLock(path string) (*Lock, error) {
	return &Lock{path: path}, nil
}

// Path returns the file's path.
func (l *Lock) Path() string {
	return l.path
}

// Release does nothing.
func (l *Lock) Release() error {
	return nil
}
