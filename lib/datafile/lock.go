// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package datafile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Lock is an exclusive advisory lock on a data file, held for as long
// as the file is attached. The lock belongs to an open file
// description, so a second AcquireLock on the same file fails even
// within one process.
type Lock struct {
	fd   int
	path string
}

// AcquireLock takes an exclusive lock on the file at path without
// blocking. It returns ErrLocked when another holder has the file.
func AcquireLock(path string) (*Lock, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s for locking: %w", path, err)
	}

	if err := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		unix.Close(fd)
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return &Lock{fd: fd, path: path}, nil
}

// Path returns the locked file's path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. Calling Release on a nil or released Lock
// does nothing.
func (l *Lock) Release() error {
	if l == nil || l.fd < 0 {
		return nil
	}
	fd := l.fd
	l.fd = -1
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("releasing lock on %s: %w", l.path, err)
	}
	return nil
}
