// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_StandsStill(t *testing.T) {
	c := Fake(epoch)

	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now() = %v, want %v", got, epoch)
	}
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("second Now() = %v, want %v", got, epoch)
	}
	if got := c.Since(epoch); got != 0 {
		t.Errorf("Since(epoch) = %v, want 0", got)
	}
}

func TestFake_Advance(t *testing.T) {
	c := Fake(epoch)

	c.Advance(90 * time.Second)

	if got := c.Since(epoch); got != 90*time.Second {
		t.Errorf("Since(epoch) = %v, want 90s", got)
	}
	if got := c.Now(); !got.Equal(epoch.Add(90 * time.Second)) {
		t.Errorf("Now() = %v, want epoch+90s", got)
	}
}

func TestFake_Set(t *testing.T) {
	c := Fake(epoch)
	later := epoch.Add(24 * time.Hour)

	c.Set(later)

	if got := c.Now(); !got.Equal(later) {
		t.Errorf("Now() = %v, want %v", got, later)
	}
}

func TestFake_Step(t *testing.T) {
	c := Fake(epoch)
	c.SetStep(3 * time.Millisecond)

	start := c.Now()
	if !start.Equal(epoch) {
		t.Errorf("first Now() = %v, want %v", start, epoch)
	}
	if got := c.Since(start); got != 3*time.Millisecond {
		t.Errorf("Since(start) = %v, want 3ms", got)
	}
	if got := c.Now(); !got.Equal(epoch.Add(3 * time.Millisecond)) {
		t.Errorf("second Now() = %v, want epoch+3ms", got)
	}

	c.SetStep(0)
	c.Now()
	if got := c.Since(epoch); got != 6*time.Millisecond {
		t.Errorf("Since(epoch) after stopping = %v, want 6ms", got)
	}
}

func TestReal(t *testing.T) {
	c := Real()

	before := time.Now()
	now := c.Now()
	if now.Before(before) {
		t.Errorf("Real().Now() = %v, earlier than %v", now, before)
	}
	if c.Since(before) < 0 {
		t.Error("Real().Since() returned a negative duration")
	}
}
