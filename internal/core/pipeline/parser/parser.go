// Package parser implements the Document Parser: typeset source text to a
// structured tailor.Resume, including macro-definition extraction and
// balanced-brace argument capture for custom commands.
//
// Grounded on original_source/resume/latex_parser.go,
// original_source/resume/section_extractor.py and
// original_source/resume/macro_expander.py.
package parser

import (
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

// Parse converts typeset résumé source into a structured Resume. It never
// fails on malformed input — sections or fields it cannot locate are left
// empty, matching the original's best-effort extraction philosophy. A
// non-nil error is returned only when source is empty.
func Parse(source string) (*tailor.Resume, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &tailor.ParseFailure{Section: "document", Reason: "empty source"}
	}

	me := newMacroExpander()
	macros := me.extractDefinitions(source)
	content := me.removeDefinitions(source)

	sections := extractSections(content)

	resume := &tailor.Resume{
		Personal: extractPersonalInfo(source),
		Macros:   macros,
	}

	resume.Summary = extractSummary(sections)
	resume.Experience = extractExperience(sections, me)
	resume.Education = extractEducation(sections)
	resume.Skills = extractSkills(sections)
	resume.Certifications = extractListSection(sections, `certifications?`, me)
	resume.Awards = extractListSection(sections, `awards?|honors?`, me)
	resume.Projects = extractProjects(sections)

	resume.BuildIndex()

	return resume, nil
}

// extractSummary returns the first paragraph of a Summary/Objective/Profile
// section, before any bulleted list, if it's substantial enough to be real
// prose rather than a stray heading.
func extractSummary(sections []section) string {
	sec := findSectionByName(sections, `summary|objective|profile`)
	if sec == nil {
		return ""
	}

	text := sec.content
	if idx := strings.Index(text, `\begin{itemize}`); idx >= 0 {
		text = text[:idx]
	}
	if idx := strings.Index(text, `\begin{enumerate}`); idx >= 0 {
		text = text[:idx]
	}

	plain := toPlainText(text)
	if len(plain) > 50 {
		return plain
	}
	return ""
}
