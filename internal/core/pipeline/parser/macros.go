package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// macroDef is a raw \newcommand/\renewcommand definition: declared arity and
// unexpanded body text.
type macroDef struct {
	arity int
	body  string
}

// macroExpander extracts and expands user-defined commands, grounded on
// original_source/resume/macro_expander.py. Go has no pylatexenc
// equivalent in the retrieved corpus, so bodies are expanded with the same
// regex-based command-stripping the Python fell back to on parse failure —
// there's only one code path here, not a primary/fallback pair.
type macroExpander struct {
	macros map[string]macroDef
}

var (
	newcommandPattern = regexp.MustCompile(`(?s)\\newcommand\s*\{\s*\\([a-zA-Z0-9_]+)\s*\}\s*(?:\[(\d+)\])?\s*\{((?:[^{}]|\{[^{}]*\})*)\}`)
	renewcommandPattern = regexp.MustCompile(`(?s)\\renewcommand\s*\{\s*\\([a-zA-Z0-9_]+)\s*\}\s*(?:\[(\d+)\])?\s*\{((?:[^{}]|\{[^{}]*\})*)\}`)
)

func newMacroExpander() *macroExpander {
	return &macroExpander{macros: make(map[string]macroDef)}
}

// extractDefinitions scans content for \newcommand/\renewcommand forms and
// records them, returning a map of macro name to its expanded plain text.
func (m *macroExpander) extractDefinitions(content string) map[string]string {
	expanded := make(map[string]string)

	for _, match := range newcommandPattern.FindAllStringSubmatch(content, -1) {
		name, arity, body := match[1], parseArity(match[2]), match[3]
		m.macros[name] = macroDef{arity: arity, body: body}
		expanded[name] = expandBody(body)
	}
	for _, match := range renewcommandPattern.FindAllStringSubmatch(content, -1) {
		name, arity, body := match[1], parseArity(match[2]), match[3]
		m.macros[name] = macroDef{arity: arity, body: body}
		expanded[name] = expandBody(body)
	}

	return expanded
}

func parseArity(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// removeDefinitions strips all newcommand/renewcommand statements from content.
func (m *macroExpander) removeDefinitions(content string) string {
	content = newcommandPattern.ReplaceAllString(content, "")
	content = renewcommandPattern.ReplaceAllString(content, "")
	return content
}

// expandText substitutes every zero-argument macro call in text with its
// expanded body.
func (m *macroExpander) expandText(text string) string {
	expanded := text
	for name, def := range m.macros {
		if def.arity != 0 {
			continue
		}
		pattern := regexp.MustCompile(`\\` + regexp.QuoteMeta(name) + `(?:\{\})?`)
		expanded = pattern.ReplaceAllString(expanded, escapeReplacement(expandBody(def.body)))
	}
	return expanded
}

// escapeReplacement neutralizes regexp.ReplaceAllString's "$" expansion
// syntax in text that is itself being substituted in, not a pattern.
func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// findMacroInText reports whether any of the named macros is called
// (`\name` or `\name{}`) within text.
func findMacroInText(text string, macroNames map[string]struct{}) string {
	for name := range macroNames {
		pattern := regexp.MustCompile(`\\` + regexp.QuoteMeta(name) + `(?:\{\})?`)
		if pattern.MatchString(text) {
			return name
		}
	}
	return ""
}

var (
	emphasisWrapPattern  = regexp.MustCompile(`\\(?:textbf|textit|emph|texttt)\{([^}]+)\}`)
	genericCommandPattern = regexp.MustCompile(`\\[a-zA-Z]+\{([^}]*)\}`)
	bareCommandPattern    = regexp.MustCompile(`\\[a-zA-Z]+`)
)

// expandBody reduces a macro body to plain text by stripping known
// formatting wrappers, then any remaining commands (keeping their
// arguments), then bare commands.
func expandBody(body string) string {
	text := emphasisWrapPattern.ReplaceAllString(body, "$1")
	text = genericCommandPattern.ReplaceAllString(text, "$1")
	text = bareCommandPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
