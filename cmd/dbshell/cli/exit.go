// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError asks the shell to stop with the given exit code. It is
// the only error the [Router] does not report and swallow: Dispatch
// returns it to the caller, which is expected to unwind the input loop
// (saving history, restoring the terminal) and exit the process.
//
// Commands return an ExitError instead of calling os.Exit so that the
// shell's deferred cleanup still runs.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The main function checks for this
// interface on returned errors to distinguish a requested exit from an
// unexpected error to display.
func (e *ExitError) ExitCode() int {
	return e.Code
}
