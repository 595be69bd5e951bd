package fit

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

var domainKeywords = map[string][]string{
	"data_streaming":       {"kafka", "kinesis", "pubsub", "streaming", "real-time"},
	"devops":               {"devops", "sre", "infrastructure", "ci-cd", "automation"},
	"cloud":                {"aws", "azure", "gcp", "cloud"},
	"distributed_systems":  {"distributed", "microservices", "cluster", "replication"},
}

var titleStopwords = map[string]bool{
	"senior": true, "junior": true, "lead": true, "staff": true, "principal": true,
	"engineer": true, "developer": true,
}

var yearPattern = regexp.MustCompile(`20\d{2}|19\d{2}`)

// EvaluateExperience scores each résumé experience entry's relevance to a
// job, sorted most-relevant first.
func EvaluateExperience(resume *tailor.Resume, req tailor.JobRequirements, currentYear int) []tailor.ExperienceMatch {
	matches := make([]tailor.ExperienceMatch, 0, len(resume.Experience))
	for _, exp := range resume.Experience {
		matches = append(matches, evaluateSingle(exp, req, currentYear))
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].RelevanceScore > matches[j].RelevanceScore })
	return matches
}

func evaluateSingle(exp tailor.Experience, req tailor.JobRequirements, currentYear int) tailor.ExperienceMatch {
	expText := strings.ToLower(joinExperienceText(exp))

	titleScore := compareJobTitles(exp.Title, req.JobTitle)

	domainScore := 0.0
	if len(req.DomainExperienceRequired) > 0 {
		found := 0
		for _, domain := range req.DomainExperienceRequired {
			if hasDomainExperience(expText, domain) {
				found++
			}
		}
		domainScore = float64(found) / float64(len(req.DomainExperienceRequired))
	}

	techScore := 0.0
	if len(req.RequiredSkills) > 0 {
		found := 0
		for skill := range req.RequiredSkills {
			if strings.Contains(expText, strings.ToLower(skill)) {
				found++
			}
		}
		techScore = float64(found) / float64(len(req.RequiredSkills))
	}

	relevance := 0.3*titleScore + 0.3*domainScore + 0.4*techScore

	var overlap []string
	for skill := range req.RequiredSkills {
		if strings.Contains(expText, strings.ToLower(skill)) {
			overlap = append(overlap, skill)
		}
	}

	return tailor.ExperienceMatch{
		JobTitle:          exp.Title,
		Company:           exp.Company,
		RelevanceScore:    relevance,
		DurationMonths:    calculateDuration(exp, currentYear),
		RecencyScore:      calculateRecency(exp, currentYear),
		DomainMatch:       domainScore > 0,
		TechnologyOverlap: overlap,
	}
}

func joinExperienceText(exp tailor.Experience) string {
	parts := []string{exp.Title, exp.Company}
	for _, b := range exp.Bullets {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, " ")
}

// compareJobTitles scores title similarity via Jaccard overlap of
// significant words, after an exact-match shortcut.
func compareJobTitles(expTitle, jobTitle string) float64 {
	if jobTitle == "" {
		return 0
	}
	a := strings.ToLower(strings.TrimSpace(expTitle))
	b := strings.ToLower(strings.TrimSpace(jobTitle))
	if a == b {
		return 1.0
	}

	wordsA := significantWords(a)
	wordsB := significantWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		setB[w] = true
	}
	intersection := 0
	union := make(map[string]bool)
	for _, w := range wordsA {
		union[w] = true
		if setB[w] {
			intersection++
		}
	}
	for _, w := range wordsB {
		union[w] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func significantWords(title string) []string {
	var out []string
	for _, w := range strings.Fields(title) {
		if !titleStopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

func hasDomainExperience(expText, domain string) bool {
	domainLower := strings.ToLower(domain)
	if strings.Contains(expText, domainLower) {
		return true
	}
	for _, kw := range domainKeywords[domainLower] {
		if strings.Contains(expText, kw) {
			return true
		}
	}
	return false
}

// calculateDuration extracts a start/end year from the date range and
// returns the span in months, defaulting to 12 when unparseable.
func calculateDuration(exp tailor.Experience, currentYear int) int {
	startYear, startOK := parseYear(exp.StartDate)
	endYear, endOK := parseYear(exp.EndDate)
	if !endOK || exp.Current || strings.Contains(strings.ToLower(exp.EndDate), "present") {
		endYear = currentYear
		endOK = true
	}
	if !startOK || !endOK {
		return 12
	}
	months := (endYear - startYear) * 12
	if months <= 0 {
		return 12
	}
	return months
}

func parseYear(date string) (int, bool) {
	m := yearPattern.FindString(date)
	if m == "" {
		return 0, false
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return y, true
}

func calculateRecency(exp tailor.Experience, currentYear int) float64 {
	if exp.Current || strings.Contains(strings.ToLower(exp.EndDate), "present") {
		return 1.0
	}
	endYear, ok := parseYear(exp.EndDate)
	if !ok {
		return 0.5
	}
	yearsAgo := currentYear - endYear
	switch {
	case yearsAgo <= 0:
		return 1.0
	case yearsAgo == 1:
		return 0.9
	case yearsAgo == 2:
		return 0.7
	case yearsAgo <= 5:
		return 0.5
	default:
		return 0.3
	}
}

// ExperienceFitScore computes the 0-100 experience-fit component.
func ExperienceFitScore(matches []tailor.ExperienceMatch, minYearsRequired int) float64 {
	if len(matches) == 0 {
		return 0
	}

	totalYears := 0.0
	for _, m := range matches {
		if m.RelevanceScore > 0.5 {
			totalYears += float64(m.DurationMonths) / 12.0
		}
	}
	yearsScore := 1.0
	if minYearsRequired > 0 {
		yearsScore = min1(totalYears/float64(minYearsRequired), 1.0)
	}

	avgRelevance := 0.0
	avgRecency := 0.0
	for _, m := range matches {
		avgRelevance += m.RelevanceScore
		avgRecency += m.RecencyScore
	}
	avgRelevance /= float64(len(matches))
	avgRecency /= float64(len(matches))

	score := (yearsScore*0.4 + avgRelevance*0.4 + avgRecency*0.2) * 100
	if score > 100 {
		return 100
	}
	return score
}

func min1(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// DetermineExperienceLevel bands overall seniority from total experience
// duration across all roles.
func DetermineExperienceLevel(resume *tailor.Resume, currentYear int) tailor.ExperienceLevel {
	totalMonths := 0
	for _, exp := range resume.Experience {
		totalMonths += calculateDuration(exp, currentYear)
	}
	totalYears := float64(totalMonths) / 12.0

	switch {
	case totalYears >= 7:
		return tailor.ExperienceSenior
	case totalYears >= 3:
		return tailor.ExperienceMid
	case totalYears >= 1:
		return tailor.ExperienceJunior
	default:
		return tailor.ExperienceEntry
	}
}
