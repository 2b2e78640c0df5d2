// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package datafile creates and validates the fixed-size header that
// prefixes every dbshell data file.
//
// The header is exactly [HeaderSize] bytes:
//
//	offset  length  field
//	0       16      magic, ASCII, NUL-padded ("dbshell v1")
//	16      2       page size, unsigned little-endian, nonzero
//	18      82      reserved, zero-filled
//
// Bytes beyond the header are not interpreted by this package.
//
// [EnsureDataFile] is the entry point used by ATTACH DATABASE: it
// creates a missing file with a fresh header, or reads and validates
// the header of an existing file. Validation outcomes are reported as
// a [Status] value rather than an error, so callers can switch on the
// reason; the error return is reserved for I/O failures.
//
// [ResolvePath] turns user-supplied path text (~, relative paths,
// file: URLs) into an absolute filesystem path.
//
// This package depends on no other dbshell packages.
package datafile
