// Package parser implements the Document Parser: typeset source text to a
// structured tailor.Resume, including macro-definition extraction and
// balanced-brace argument capture for custom commands.
//
// Grounded on original_source/resume/latex_parser.go and
// original_source/resume/macro_expander.py.
package parser

// ExtractBalancedBraces reads a brace-delimited argument starting at the
// opening '{' found at or after start. It returns the argument body
// (without the enclosing braces) and the index just past the matching
// closing brace. Unbalanced input yields a best-effort capture to the end
// of the text.
func ExtractBalancedBraces(text string, start int) (body string, end int) {
	n := len(text)
	if start >= n || text[start] != '{' {
		// Caller error or no opening brace at start: best effort.
		for start < n && text[start] != '{' {
			start++
		}
		if start >= n {
			return "", n
		}
	}

	depth := 0
	bodyStart := start + 1
	i := start
	for i < n {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[bodyStart:i], i + 1
			}
		}
		i++
	}

	// Unbalanced: best-effort capture to end of input.
	return text[bodyStart:], n
}
