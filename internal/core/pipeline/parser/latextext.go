package parser

import (
	"regexp"
	"strings"
)

// latexEscapes covers the handful of escaped characters that show up in
// résumé sources (company names with "&", etc).
var latexEscapes = strings.NewReplacer(
	`\&`, "&",
	`\%`, "%",
	`\$`, "$",
	`\#`, "#",
	`\_`, "_",
	"~", " ",
	"\\\\", "\n",
)

// toPlainText reduces a snippet of typeset source to plain text: strips
// known formatting commands, unescapes the common escaped characters, and
// collapses whitespace. There is no full typesetting-language interpreter
// here, just the subset original_source's pylatexenc.latex2text round-trip
// actually exercised for résumé content (bold/italic/emphasis wrappers,
// escaped punctuation, line breaks).
func toPlainText(text string) string {
	out := emphasisWrapPattern.ReplaceAllString(text, "$1")
	out = genericCommandPattern.ReplaceAllString(out, "$1")
	out = latexEscapes.Replace(out)
	out = bareCommandPattern.ReplaceAllString(out, "")
	out = collapseWhitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

var collapseWhitespace = regexp.MustCompile(`\s+`)
