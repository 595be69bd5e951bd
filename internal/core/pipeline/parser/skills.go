package parser

import (
	"regexp"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

var skillsCategoryPattern = regexp.MustCompile(`(?i)([A-Za-z\s]+):\s*([^\n]+)`)

// extractSkills finds the skills section and buckets its "Label: item,
// item, ..." lines into technical/tools/languages by label keyword,
// mirroring original_source/resume/latex_parser.py's _extract_skills.
func extractSkills(sections []section) tailor.Skills {
	var skills tailor.Skills

	sec := findSectionByName(sections, `(?:technical\s*)?skills|technologies`)
	if sec == nil {
		return skills
	}

	text := toPlainText(sec.content)

	for _, m := range skillsCategoryPattern.FindAllStringSubmatch(text, -1) {
		category := strings.ToLower(strings.TrimSpace(m[1]))
		items := splitCommaList(m[2])

		switch {
		case strings.Contains(category, "language") && !strings.Contains(category, "programming"):
			skills.Languages = append(skills.Languages, items...)
		case containsAny(category, "technical", "programming", "language", "kafka", "ecosystem"):
			skills.Technical = append(skills.Technical, items...)
		case containsAny(category, "tool", "devops", "platform", "monitoring"):
			skills.Tools = append(skills.Tools, items...)
		case containsAny(category, "scripting", "script"):
			skills.Technical = append(skills.Technical, items...)
		default:
			skills.Tools = append(skills.Tools, items...)
		}
	}

	skills.Technical = dedup(skills.Technical)
	skills.Tools = dedup(skills.Tools)
	skills.Languages = dedup(skills.Languages)

	return skills
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func dedup(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
