// Package textsim provides the fuzzy string-similarity ratio shared by the
// Matcher and the Comparator. original_source uses Python's
// difflib.SequenceMatcher.ratio(); the nearest widely-used Go equivalent
// carried by the example corpus (transitively, via several CLI tools'
// spell-check/fuzzy-match dependency chains) is agnivade/levenshtein, so
// fuzzy similarity here is edit-distance-based rather than
// matching-blocks-based. Both land in the same [0,1] "how similar are
// these strings" space; the threshold in matcher.go was tuned for that
// space, not for an exact numeric match with the Python original.
package textsim

import "github.com/agnivade/levenshtein"

// Ratio returns a 0..1 similarity score between a and b: 1 for identical
// strings, decreasing with edit distance relative to the longer string's
// length.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}
