// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
)

// Command is a shell command as seen by the [Router].
type Command interface {
	// Name is the canonical, case-preserved name. It may contain
	// spaces and may start with a marker character.
	Name() string

	// Description is a one-line summary shown in the global help.
	Description() string

	// Help writes the detailed help text to w.
	Help(w io.Writer)

	// Execute runs the command with the tokens that followed its name.
	Execute(args []string) error
}

// Definition is a Command assembled from plain data and a Run function.
type Definition struct {
	// CanonicalName is the name as the user types it (e.g., ".exit",
	// "ATTACH DATABASE").
	CanonicalName string

	// Summary is a one-line description shown in the global help.
	Summary string

	// Details is a longer multi-line description shown in the
	// command's own help output.
	Details string

	// Usage is the usage line (e.g., "ATTACH DATABASE <path|url>").
	// If empty, the canonical name is used.
	Usage string

	// Examples are shown in the help output after the usage line.
	Examples []Example

	// Run executes the command with the tokens after its name.
	Run func(args []string) error
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal input line.
	Command string
}

// Name returns the canonical name.
func (d *Definition) Name() string { return d.CanonicalName }

// Description returns the one-line summary.
func (d *Definition) Description() string { return d.Summary }

// Execute runs the command. A Definition without a Run function fails
// rather than silently succeeding.
func (d *Definition) Execute(args []string) error {
	if d.Run == nil {
		return fmt.Errorf("%s: not yet implemented", d.CanonicalName)
	}
	return d.Run(args)
}

// Help writes structured help output to w.
func (d *Definition) Help(w io.Writer) {
	fmt.Fprintf(w, "%s - %s\n", d.CanonicalName, d.Summary)

	if d.Details != "" {
		fmt.Fprintf(w, "\n%s\n", d.Details)
	}

	usage := d.Usage
	if usage == "" {
		usage = d.CanonicalName
	}
	fmt.Fprintf(w, "\nUsage:\n  %s\n", usage)

	if len(d.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range d.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
		}
	}
}
