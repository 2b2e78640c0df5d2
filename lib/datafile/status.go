// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datafile

// Status is the outcome of opening or validating a data file header.
type Status int

const (
	// StatusValid means an existing file has a well-formed header.
	StatusValid Status = iota

	// StatusCreated means the file did not exist and was created
	// with a fresh header.
	StatusCreated

	// StatusTooSmall means fewer than 18 bytes could be read, so
	// neither the magic nor the page size is available.
	StatusTooSmall

	// StatusBadMagic means the format tag does not match [Magic].
	StatusBadMagic

	// StatusZeroPageSize means the page size field is zero.
	StatusZeroPageSize
)

// OK reports whether the status allows the file to be used.
func (s Status) OK() bool {
	return s == StatusValid || s == StatusCreated
}

// String returns a short identifier for logging.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusCreated:
		return "created"
	case StatusTooSmall:
		return "too-small"
	case StatusBadMagic:
		return "bad-magic"
	case StatusZeroPageSize:
		return "zero-page-size"
	default:
		return "unknown"
	}
}

// Reason returns the user-facing explanation for a failed status, or
// "" for statuses where OK is true.
func (s Status) Reason() string {
	switch s {
	case StatusTooSmall:
		return "file too small to contain a database header"
	case StatusBadMagic:
		return "database header invalid: unrecognized format tag"
	case StatusZeroPageSize:
		return "database header invalid: page size is zero"
	case StatusValid, StatusCreated:
		return ""
	default:
		return "database header invalid"
	}
}
