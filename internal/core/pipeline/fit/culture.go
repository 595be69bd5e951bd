package fit

import (
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

var companySizeIndicators = map[string][]string{
	"startup":    {"startup", "founding team", "early stage", "seed", "series a"},
	"scaleup":    {"growth stage", "scaling", "series b", "series c", "expanding"},
	"enterprise": {"enterprise", "fortune", "global", "multinational", "large scale"},
}

var workStyleKeywords = map[string][]string{
	"Collaborative": {"collaborated", "cross-functional", "team", "partnered", "coordinated"},
	"Autonomous":    {"independently", "self-directed", "initiative", "owned", "drove"},
	"Leadership":    {"led", "mentored", "managed", "guided", "coached"},
	"Innovative":    {"innovative", "created", "designed", "pioneered", "launched"},
}

var valuesKeywords = map[string][]string{
	"Quality":        {"quality", "excellence", "best practices", "standards"},
	"Innovation":     {"innovation", "cutting-edge", "modern", "new technology"},
	"Efficiency":     {"efficiency", "optimization", "performance", "streamlined"},
	"Collaboration":  {"collaboration", "teamwork", "partnership", "cross-functional"},
	"Customer Focus": {"customer", "user", "client", "stakeholder"},
}

var (
	servantLeadership       = []string{"mentored", "coached", "supported", "enabled", "empowered"}
	directiveLeadership     = []string{"directed", "managed", "oversaw", "supervised", "controlled"}
	collaborativeLeadership = []string{"collaborated", "facilitated", "coordinated", "partnered"}
)

// AnalyzeCultureFit derives soft cultural-alignment signals from the résumé
// against the job's stated company size and domain requirements.
func AnalyzeCultureFit(resume *tailor.Resume, req tailor.JobRequirements) tailor.CultureFitIndicators {
	return tailor.CultureFitIndicators{
		CompanySizeMatch:    checkCompanySizeMatch(resume, req.CompanySize),
		IndustryMatch:       checkIndustryMatch(resume, req),
		WorkStyleIndicators: extractWorkStyle(resume),
		ValuesAlignment:     extractValues(resume),
		LeadershipStyle:     determineLeadershipStyle(resume),
	}
}

func checkCompanySizeMatch(resume *tailor.Resume, requiredSize string) bool {
	indicators, ok := companySizeIndicators[strings.ToLower(requiredSize)]
	if !ok {
		return false
	}
	for _, exp := range resume.Experience {
		var bullets []string
		for _, b := range exp.Bullets {
			bullets = append(bullets, b.Text)
		}
		companyText := strings.ToLower(exp.Company + " " + exp.Title + " " + strings.Join(bullets, " "))
		if containsAny(companyText, indicators) {
			return true
		}
	}
	return false
}

func checkIndustryMatch(resume *tailor.Resume, req tailor.JobRequirements) bool {
	for _, domain := range req.DomainExperienceRequired {
		domainLower := strings.ToLower(domain)
		for _, exp := range resume.Experience {
			var bullets []string
			for _, b := range exp.Bullets {
				bullets = append(bullets, b.Text)
			}
			expText := strings.ToLower(exp.Title + " " + strings.Join(bullets, " "))
			if strings.Contains(expText, domainLower) {
				return true
			}
		}
	}
	return false
}

func extractWorkStyle(resume *tailor.Resume) []string {
	combined := allResumeText(resume)
	var styles []string
	for style, keywords := range workStyleKeywords {
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				matches++
			}
		}
		if matches >= 2 {
			styles = append(styles, style)
		}
	}
	return styles
}

func extractValues(resume *tailor.Resume) []string {
	combined := allResumeText(resume)
	var values []string
	for value, keywords := range valuesKeywords {
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				matches++
			}
		}
		if matches >= 2 {
			values = append(values, value)
		}
	}
	return values
}

func allResumeText(resume *tailor.Resume) string {
	parts := []string{resume.Summary}
	for _, b := range resume.AllBullets {
		parts = append(parts, b.Text)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func determineLeadershipStyle(resume *tailor.Resume) string {
	var bulletTexts []string
	for _, b := range resume.AllBullets {
		bulletTexts = append(bulletTexts, b.Text)
	}
	combined := strings.ToLower(strings.Join(bulletTexts, " "))

	scores := map[string]int{
		"servant":       countMatches(combined, servantLeadership),
		"directive":     countMatches(combined, directiveLeadership),
		"collaborative": countMatches(combined, collaborativeLeadership),
	}

	best, bestScore := "unknown", 0
	for _, style := range []string{"servant", "directive", "collaborative"} {
		if scores[style] > bestScore {
			best, bestScore = style, scores[style]
		}
	}
	if bestScore == 0 {
		return "unknown"
	}
	return best
}

func countMatches(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
