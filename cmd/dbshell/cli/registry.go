// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
)

// Category is a labelled group of commands in the global help. It has
// no effect on matching.
type Category struct {
	// Label is printed above the category's commands (e.g.,
	// "System commands").
	Label string

	// Commands in registration order.
	Commands []Command
}

// Registry is an insertion-ordered collection of commands, grouped
// into categories for display. Categories appear in the order they
// were first added.
//
// The registry does not reject duplicate names. When two commands
// normalize to the same name, the one registered first wins every
// lookup and tie.
type Registry struct {
	categories []*Category
	commands   []Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers commands under the category label, creating the
// category at the end of the display order if it does not exist yet.
func (r *Registry) Add(label string, commands ...Command) {
	var category *Category
	for _, existing := range r.categories {
		if existing.Label == label {
			category = existing
			break
		}
	}
	if category == nil {
		category = &Category{Label: label}
		r.categories = append(r.categories, category)
	}

	category.Commands = append(category.Commands, commands...)
	r.commands = append(r.commands, commands...)
}

// Commands returns every registered command in registration order.
// The returned slice must not be modified.
func (r *Registry) Commands() []Command {
	return r.commands
}

// Categories returns the categories in display order. The returned
// slice must not be modified.
func (r *Registry) Categories() []*Category {
	return r.categories
}

// Lookup returns the first command whose normalized name equals the
// normalized target. Only whole names match; there is no prefix
// matching.
func (r *Registry) Lookup(target string) (Command, bool) {
	normalized := Normalize(target)
	for _, command := range r.commands {
		if Normalize(command.Name()) == normalized {
			return command, true
		}
	}
	return nil, false
}

// PrintHelp writes the global help listing to w: a header line, each
// category with one "  name - description" line per command, and a
// tips block.
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")

	for _, category := range r.categories {
		fmt.Fprintf(w, "\n%s:\n", category.Label)
		for _, command := range category.Commands {
			fmt.Fprintf(w, "  %s - %s\n", command.Name(), command.Description())
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tips:")
	fmt.Fprintln(w, "  Type 'help <command>' to see detailed help for a command.")
	fmt.Fprintln(w, "  Add --help or -h after a command name for the same help.")
	fmt.Fprintln(w, "  Command names are case-insensitive.")
}
