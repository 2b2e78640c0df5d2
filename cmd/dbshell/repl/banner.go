// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// WriteBanner prints the welcome banner to w. Styling follows profile;
// pass termenv.Ascii for plain text.
func WriteBanner(w io.Writer, profile termenv.Profile, versionText string) {
	// NewRenderer with an explicit profile skips detection, which would
	// otherwise query the real terminal even when w is a buffer.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	titleStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ruleStyle := renderer.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle := renderer.NewStyle().Faint(true)

	title := "Welcome to dbshell " + versionText
	rule := strings.Repeat("─", ansi.StringWidth(title))

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, ruleStyle.Render(rule))
	fmt.Fprintln(w, hintStyle.Render("Type 'help' for a list of commands, '.exit' or Ctrl-D to quit. Ctrl-C clears the line."))
	fmt.Fprintln(w)
}

// Profile picks the colour profile for output: Ascii unless it is a
// terminal, in which case the environment decides.
func Profile(terminal bool) termenv.Profile {
	if !terminal {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
