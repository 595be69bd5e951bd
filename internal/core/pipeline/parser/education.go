package parser

import (
	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

// extractEducation finds the education section and parses it, preferring
// the \resumeSubheading{Institution}{Location}{Degree}{Date} template and
// falling back to a generic "Degree -- Institution" subsection format.
func extractEducation(sections []section) []tailor.Education {
	sec := findSectionByName(sections, `education`)
	if sec == nil {
		return nil
	}

	if entries := parseSubheadingEducation(sec.content); len(entries) > 0 {
		return entries
	}

	var entries []tailor.Education
	for _, sub := range extractSubsections(sec.content) {
		var degree, institution string
		if m := experienceTitlePattern.FindStringSubmatch(sub.title); m != nil {
			degree = toPlainText(m[1])
			institution = toPlainText(m[2])
		} else {
			degree = toPlainText(sub.title)
		}

		dates := datePattern.FindAllString(sub.content, -1)
		gradDate := ""
		if len(dates) > 0 {
			gradDate = dates[0]
		}

		entries = append(entries, tailor.Education{
			Degree:      degree,
			Institution: institution,
			EndDate:     gradDate,
		})
	}
	return entries
}

func parseSubheadingEducation(content string) []tailor.Education {
	var entries []tailor.Education

	for _, s := range resumeSubheadingStart.FindAllStringIndex(content, -1) {
		pos := s[1] - 1

		institutionText, pos := ExtractBalancedBraces(content, pos)
		institution := toPlainText(institutionText)
		pos = skipWhitespaceAfterBrace(content, pos)

		locationText, pos := ExtractBalancedBraces(content, pos)
		location := toPlainText(locationText)
		pos = skipWhitespaceAfterBrace(content, pos)

		degreeText, pos := ExtractBalancedBraces(content, pos)
		degree := toPlainText(degreeText)
		pos = skipWhitespaceAfterBrace(content, pos)

		dateText, _ := ExtractBalancedBraces(content, pos)

		entries = append(entries, tailor.Education{
			Institution: institution,
			Location:    location,
			Degree:      degree,
			EndDate:     dateText,
		})
	}

	return entries
}
