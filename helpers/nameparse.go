// Package helpers provides small text utilities shared by the cleaning
// pipeline: personal-name inversion and whitespace normalization.
package helpers

import (
	"regexp"
	"strings"
)

var (
	// Pattern for "Last, First" format. The surname part may contain
	// spaces, hyphens, apostrophes and periods; only a comma ends it.
	invertedNameRegex = regexp.MustCompile(`([^,]+),\s*([^,]+)`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// InvertName rewrites "Last, First" to "First Last".
//
// Only the first "surname, given" pair is used: text after a second comma
// does not take part in the split. Handles multi-part surnames:
//
//	"Lukšo-Ražinska, Elizabete" → "Elizabete Lukšo-Ražinska"
//	"van der Berg, Jan"         → "Jan van der Berg"
//	"O'Connor, Mary"            → "Mary O'Connor"
//
// Input without a comma is returned unchanged, which makes the function
// idempotent on already-direct names.
func InvertName(name string) string {
	if name == "" {
		return name
	}
	matches := invertedNameRegex.FindStringSubmatch(strings.TrimSpace(name))
	if matches == nil {
		return name
	}
	surname := strings.TrimSpace(matches[1])
	given := strings.TrimSpace(matches[2])
	return given + " " + surname
}

// IsInvertedName checks if a name appears to be in "Last, First" format.
func IsInvertedName(name string) bool {
	return strings.Contains(name, ",")
}

// NormalizeSpace collapses runs of whitespace to single spaces and trims
// the ends.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
