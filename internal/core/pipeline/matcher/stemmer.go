package matcher

import "strings"

// stem applies a minimal suffix-stripping stemmer: enough to equate common
// morphological variants ("managing"/"managed"/"manages" -> "manag") the
// way original_source's NLTK PorterStemmer does for résumé vocabulary,
// without implementing the full multi-step Porter algorithm. No stemming
// library appears anywhere in the example pack or its transitive
// dependencies, so this is stdlib string-manipulation by necessity, not
// convenience — see DESIGN.md.
func stem(word string) string {
	w := strings.ToLower(word)
	if len(w) < 4 {
		return w
	}

	suffixes := []string{"ational", "ization", "fulness", "ousness", "iveness",
		"ing", "edly", "ied", "ies", "ed", "es", "er", "est",
		"ly", "s"}

	for _, suf := range suffixes {
		if strings.HasSuffix(w, suf) && len(w)-len(suf) >= 3 {
			return strings.TrimSuffix(w, suf)
		}
	}
	return w
}
