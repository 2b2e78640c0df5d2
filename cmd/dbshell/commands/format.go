// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"time"
)

// formatElapsed renders a command duration with a unit suited to its
// size: microseconds below a millisecond, milliseconds below a second,
// seconds otherwise.
func formatElapsed(elapsed time.Duration) string {
	switch {
	case elapsed < time.Millisecond:
		return fmt.Sprintf("%dµs", elapsed.Microseconds())
	case elapsed < time.Second:
		return fmt.Sprintf("%.1fms", float64(elapsed)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", elapsed.Seconds())
	}
}

// FormatRunTime is the line printed after each input when .timer is on.
func FormatRunTime(elapsed time.Duration) string {
	return "Run Time: " + formatElapsed(elapsed)
}
