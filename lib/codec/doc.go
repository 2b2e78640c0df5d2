// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides dbshell's CBOR encoding configuration for
// on-disk state (the command history file).
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// time.Time values are written as RFC 3339 text with nanoseconds so
// timestamps survive a round trip exactly.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For CBOR sequences (RFC 8742), one item after another in a file:
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
//
// Types serialized only through this package carry `cbor` struct tags.
package codec
