package parser

import (
	"regexp"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

type personalPattern struct {
	field   string
	pattern *regexp.Regexp
}

// personalPatterns lists, per field, the patterns to try in order. The
// first one to match wins, mirroring original_source/resume/latex_parser.py's
// PERSONAL_PATTERNS table.
var personalPatterns = []personalPattern{
	{"name", regexp.MustCompile(`(?i)\\name\s*\{([^}]+)\}`)},
	{"name", regexp.MustCompile(`(?i)\\author\s*\{([^}]+)\}`)},
	{"email", regexp.MustCompile(`(?i)\\email\s*\{([^}]+)\}`)},
	{"email", regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{"phone", regexp.MustCompile(`(?i)\\phone\s*\{([^}]+)\}`)},
	{"phone", regexp.MustCompile(`(?i)\\mobile\s*\{([^}]+)\}`)},
	{"phone", regexp.MustCompile(`\+?\d{1,3}[\s\-]?\d{3,4}[\s\-]?\d{4,}`)},
	{"location", regexp.MustCompile(`(?i)\\location\s*\{([^}]+)\}`)},
	{"location", regexp.MustCompile(`(?i)\\address\s*\{([^}]+)\}`)},
	{"linkedin", regexp.MustCompile(`(?i)\\linkedin\s*\{([^}]+)\}`)},
	{"linkedin", regexp.MustCompile(`linkedin\.com/in/([a-zA-Z0-9\-]+)`)},
	{"github", regexp.MustCompile(`(?i)\\github\s*\{([^}]+)\}`)},
	{"github", regexp.MustCompile(`github\.com/([a-zA-Z0-9\-]+)`)},
}

var nameFromBfseries = regexp.MustCompile(`(?i)\\(?:Huge|LARGE|Large|large)?\s*\\bfseries\s+([A-Z][a-zA-Z\s]+?)(?:\\\\|\})`)

// extractPersonalInfo tries the standard command-based patterns first,
// falling back to a bfseries-header heuristic for the name when a custom
// template has no explicit \name/\author command.
func extractPersonalInfo(content string) tailor.PersonalInfo {
	var info tailor.PersonalInfo
	found := make(map[string]bool)

	for _, p := range personalPatterns {
		if found[p.field] {
			continue
		}
		m := p.pattern.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		var value string
		if len(m) > 1 {
			value = strings.TrimSpace(m[1])
		} else {
			value = strings.TrimSpace(m[0])
		}
		value = toPlainText(value)
		if p.field == "linkedin" || p.field == "github" {
			if idx := strings.LastIndex(value, "/"); idx >= 0 {
				value = value[idx+1:]
			}
		}
		setPersonalField(&info, p.field, value)
		found[p.field] = true
	}

	if info.Name == "" {
		if m := nameFromBfseries.FindStringSubmatch(content); m != nil {
			info.Name = strings.TrimSpace(m[1])
		}
	}

	return info
}

func setPersonalField(info *tailor.PersonalInfo, field, value string) {
	switch field {
	case "name":
		info.Name = value
	case "email":
		info.Email = value
	case "phone":
		info.Phone = value
	case "location":
		info.Location = value
	case "linkedin":
		info.LinkedIn = value
	case "github":
		info.GitHub = value
	}
}
