// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Code that timestamps or times work accepts a Clock instead of calling
// time.Now and time.Since directly. In production, Real() provides the
// standard library behavior. In tests, Fake() provides a clock that
// moves only when told to, so recorded timestamps and measured
// durations are exact.
//
// # Wiring Pattern
//
// Add a Clock field to structs that use time:
//
//	type Shell struct {
//	    Clock clock.Clock
//	    // ...
//	}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	c.SetStep(2 * time.Millisecond) // every Now call advances 2ms
//	s := &Shell{Clock: c}
package clock
