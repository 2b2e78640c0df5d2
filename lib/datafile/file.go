// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datafile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrLocked is returned by AcquireLock when another process, or another
// attach in this one, holds the data file.
var ErrLocked = errors.New("database is locked by another process")

// EnsureDataFile makes path usable as a data file.
//
// If nothing exists at path, the file is created containing exactly
// CreateHeader(pageSize) and StatusCreated is returned. Otherwise the
// file is opened read-only, up to HeaderSize bytes are read, and the
// result of validating them is returned: StatusValid, StatusTooSmall,
// StatusBadMagic, or StatusZeroPageSize. An existing file is never
// written to, whatever its contents.
//
// The returned error is non-nil only for filesystem failures (the
// path is a directory, permission denied, and so on); header problems
// are reported through the Status alone.
func EnsureDataFile(path string, pageSize int) (Status, error) {
	created, err := createIfMissing(path, pageSize)
	if err != nil {
		return StatusValid, err
	}
	if created {
		return StatusCreated, nil
	}

	_, status, err := ReadHeader(path)
	return status, err
}

// ReadHeader reads and decodes the header of the file at path. The
// file handle is released before ReadHeader returns on every path.
func ReadHeader(path string) (Header, Status, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, StatusValid, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	buffer := make([]byte, HeaderSize)
	count, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Header{}, StatusValid, fmt.Errorf("reading header of %s: %w", path, err)
	}

	header, status := DecodeHeader(buffer[:count])
	return header, status, nil
}

// createIfMissing writes a new header file at path, returning false
// without error if a file already exists there. O_EXCL guarantees an
// existing file is never truncated, even if it appears between the
// caller's decision and the open.
func createIfMissing(path string, pageSize int) (bool, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := file.Write(CreateHeader(pageSize)); err != nil {
		file.Close()
		return false, fmt.Errorf("writing header to %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}
