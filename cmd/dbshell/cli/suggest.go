// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "strings"

// suggestionThreshold is the largest edit distance that still produces
// a suggestion. Three edits catches common typos (transpositions,
// dropped characters, extra characters) without suggesting unrelated
// names.
const suggestionThreshold = 3

// minimumPrefixLength is the shortest input that may be matched
// against the first word of a multi-word command.
const minimumPrefixLength = 3

// suggestCommand returns the command to offer for an unknown input, or
// false if nothing is close enough.
//
// The closest command by edit distance between normalized names wins
// when it is within suggestionThreshold; ties go to the command
// registered first. Otherwise an input of at least
// minimumPrefixLength characters suggests the first multi-word command
// whose first word it equals ("attach" → "ATTACH DATABASE").
func suggestCommand(input string, commands []Command) (Command, bool) {
	normalized := Normalize(input)

	var best Command
	bestDistance := -1
	for _, command := range commands {
		distance := levenshtein(normalized, Normalize(command.Name()))
		if bestDistance < 0 || distance < bestDistance {
			bestDistance = distance
			best = command
		}
	}
	if best != nil && bestDistance <= suggestionThreshold {
		return best, true
	}

	if len([]rune(normalized)) >= minimumPrefixLength {
		prefix := normalized + " "
		for _, command := range commands {
			if strings.HasPrefix(Normalize(command.Name()), prefix) {
				return command, true
			}
		}
	}

	return nil, false
}

// levenshtein computes the Levenshtein edit distance between two
// strings, counted in runes. This is the minimum number of
// single-character edits (insertions, deletions, or substitutions)
// required to change one string into the other.
func levenshtein(a, b string) int {
	source := []rune(a)
	target := []rune(b)

	if len(source) == 0 {
		return len(target)
	}
	if len(target) == 0 {
		return len(source)
	}

	// Use a single row of the distance matrix, updated per column.
	// This is O(min(m,n)) space instead of O(m*n) and yields the same
	// values as the full table.
	if len(source) > len(target) {
		source, target = target, source
	}

	previous := make([]int, len(source)+1)
	current := make([]int, len(source)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(target); j++ {
		current[0] = j

		for i := 1; i <= len(source); i++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, insertion, substitution)
		}

		previous, current = current, previous
	}

	return previous[len(source)]
}
