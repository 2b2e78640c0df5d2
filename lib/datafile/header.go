// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datafile

import (
	"bytes"
	"encoding/binary"
)

// Header layout constants.
const (
	// HeaderSize is the fixed length of the header at the start of
	// every data file.
	HeaderSize = 100

	// Magic identifies the file format and version. It occupies the
	// first magicLength bytes of the header, NUL-padded on the right.
	Magic = "dbshell v1"

	// DefaultPageSize is the page size written into newly created
	// files when the caller has no configured value.
	DefaultPageSize = 4096

	magicLength    = 16
	pageSizeOffset = 16

	// minimumHeaderBytes is the shortest buffer that contains both
	// the magic and the page size. Anything shorter cannot be
	// validated at all.
	minimumHeaderBytes = pageSizeOffset + 2
)

// Header is the decoded form of a data file header. The reserved
// region is not represented: it is always written as zeros and never
// inspected on read.
type Header struct {
	// Magic is the format tag with trailing NUL bytes removed.
	Magic string

	// PageSize is the page size in bytes.
	PageSize uint16
}

// Encode returns the HeaderSize-byte wire form of h. A magic longer
// than 16 bytes is truncated.
func (h Header) Encode() []byte {
	buffer := make([]byte, HeaderSize)
	copy(buffer[:magicLength], h.Magic)
	binary.LittleEndian.PutUint16(buffer[pageSizeOffset:], h.PageSize)
	return buffer
}

// CreateHeader returns a fresh header carrying [Magic] and pageSize.
// The page size is stored as an unsigned 16-bit value; larger values
// wrap silently. CreateHeader(0) produces a header that
// [IsValidHeader] rejects.
func CreateHeader(pageSize int) []byte {
	return Header{Magic: Magic, PageSize: uint16(pageSize)}.Encode()
}

// DecodeHeader parses the magic and page size from buffer and reports
// whether they form a valid header. The returned Header is populated
// whenever buffer holds at least the magic and page size fields, even
// if validation fails, so callers can show what was found.
func DecodeHeader(buffer []byte) (Header, Status) {
	if len(buffer) < minimumHeaderBytes {
		return Header{}, StatusTooSmall
	}

	header := Header{
		Magic:    string(bytes.TrimRight(buffer[:magicLength], "\x00")),
		PageSize: binary.LittleEndian.Uint16(buffer[pageSizeOffset:minimumHeaderBytes]),
	}

	if header.Magic != Magic {
		return header, StatusBadMagic
	}
	if header.PageSize == 0 {
		return header, StatusZeroPageSize
	}
	return header, StatusValid
}

// IsValidHeader reports whether buffer starts with a well-formed
// header: at least 18 bytes, the expected magic once trailing NULs are
// stripped, and a nonzero page size.
func IsValidHeader(buffer []byte) bool {
	_, status := DecodeHeader(buffer)
	return status.OK()
}
