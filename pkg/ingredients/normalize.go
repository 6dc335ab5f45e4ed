// Package ingredients normalizes ingredient text, builds the catalog's
// unique ingredient list and samples suggestions from it.
//
// The same Normalize function is applied to catalog text and to user
// queries, so containment checks compare like with like.
package ingredients

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Separator splits an ingredient list into ingredient names.
const Separator = ","

// Normalize prepares ingredient text for comparison: Unicode NFC
// composition, lowercasing and trimming of surrounding whitespace.
//
// Parameters:
//   - s: Raw ingredient text, a single name or a whole list
//
// Returns:
//   - string: Normalized text
//
// Example:
//
//	ingredients.Normalize("  Vitamin C ") // "vitamin c"
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFC.String(s)))
}

// Split breaks a comma-separated ingredient list into normalized names,
// dropping names that are empty after normalization.
//
// Parameters:
//   - list: Raw ingredient list, e.g. "Water, Vitamin C, Glycerin"
//
// Returns:
//   - []string: Normalized names in list order; duplicates are kept
func Split(list string) []string {
	parts := strings.Split(list, Separator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Normalize(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}
