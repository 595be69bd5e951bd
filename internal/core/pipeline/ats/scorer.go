// Package ats implements the ATS Scorer: a 0-100 estimate of how well a
// résumé will clear keyword-based applicant tracking screens.
//
// Grounded on original_source/resume/ats/scorer.py.
package ats

import (
	"fmt"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/keywords"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/matcher"
)

// Weight distribution for the overall score, per spec.md §4.4.
const (
	weightKeyword    = 0.40
	weightExperience = 0.20
	weightSkills     = 0.20
	weightEducation  = 0.10
	weightFormat     = 0.10
)

// Score computes the ATS score of resume against a job description,
// optionally with a known job title used for the experience sub-score.
func Score(resume *tailor.Resume, jobDescription, jobTitle string) tailor.ATSScore {
	kws := keywords.Extract(jobDescription, 50)
	matches := matcher.Match(resume, kws)

	keywordScore := calculateKeywordScore(matches)
	experienceScore := calculateExperienceScore(resume, jobTitle)
	skillsScore := calculateSkillsScore(resume, matches)
	educationScore := calculateEducationScore(resume)
	formatScore := calculateFormatScore(resume)

	overall := keywordScore*weightKeyword +
		experienceScore*weightExperience +
		skillsScore*weightSkills +
		educationScore*weightEducation +
		formatScore*weightFormat

	var matched, missing []tailor.KeywordMatch
	for _, m := range matches {
		if m.IsMatched() {
			matched = append(matched, m)
		} else {
			missing = append(missing, m)
		}
	}

	critical, improvements, enhancements := generateRecommendations(matches, resume)

	return tailor.ATSScore{
		Overall:         clamp(overall),
		KeywordScore:    keywordScore,
		ExperienceScore: experienceScore,
		SkillsScore:     skillsScore,
		EducationScore:  educationScore,
		FormatScore:     formatScore,
		Matched:         matched,
		Missing:         missing,
		Sections:        calculateSectionScores(resume, matches),
		Critical:        critical,
		Improvements:    improvements,
		Enhancements:    enhancements,
	}
}

func calculateKeywordScore(matches []tailor.KeywordMatch) float64 {
	if len(matches) == 0 {
		return 0
	}

	var totalWeighted, totalWeight float64
	for _, m := range matches {
		weight := m.Keyword.Importance
		totalWeighted += m.Score() * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}

	raw := (totalWeighted / totalWeight) * 100

	missingCritical := 0
	for _, m := range matches {
		if !m.IsMatched() && m.Keyword.Importance >= 0.8 {
			missingCritical++
		}
	}
	penalty := float64(missingCritical) * 5

	return clamp(raw - penalty)
}

// calculateExperienceScore approximates years-of-experience from role
// count, per spec.md §9's explicit "keep this coarseness" decision.
func calculateExperienceScore(resume *tailor.Resume, jobTitle string) float64 {
	score := 0.0

	// The ATS Scorer doesn't parse a separate structured JobRequirements
	// (that's the Fit Scorer's job) so years-of-experience credit always
	// takes the "no explicit requirement" branch: partial credit just for
	// having any experience at all.
	if len(resume.Experience) > 0 {
		score += 30
	}

	if jobTitle != "" && len(resume.Experience) > 0 {
		titleKeywords := []string{"kafka", "administrator", "devops", "platform", "engineer", "sre"}
		jdTitleLower := strings.ToLower(jobTitle)

		for _, exp := range resume.Experience {
			expTitleLower := strings.ToLower(exp.Title)
			overlap := 0
			for _, kw := range titleKeywords {
				if strings.Contains(expTitleLower, kw) && strings.Contains(jdTitleLower, kw) {
					overlap++
				}
			}
			if overlap > 0 {
				score += float64(min(30, overlap*10))
				break
			}
		}
	} else if len(resume.Experience) > 0 {
		score += 15
	}

	if len(resume.Experience) > 0 {
		recent := resume.Experience[0]
		if recent.Current || strings.Contains(strings.ToLower(recent.EndDate), "present") {
			score += 15
		} else {
			score += 10
		}
	}

	switch {
	case len(resume.Experience) >= 2:
		score += 15
	case len(resume.Experience) == 1:
		score += 10
	}

	return clamp(score)
}

func calculateSkillsScore(resume *tailor.Resume, matches []tailor.KeywordMatch) float64 {
	score := 0.0

	techRate := categoryMatchRate(matches, tailor.CategoryTechnical)
	score += techRate * 50

	toolRate := categoryMatchRate(matches, tailor.CategoryTool)
	score += toolRate * 25

	certMatches := countMatched(matches, tailor.CategoryCertification)
	switch {
	case certMatches > 0:
		score += 15
	case len(resume.Certifications) > 0:
		score += 10
	}

	totalSkills := len(resume.Skills.Technical) + len(resume.Skills.Tools) + len(resume.Skills.Languages)
	switch {
	case totalSkills >= 15:
		score += 10
	case totalSkills >= 10:
		score += 7
	case totalSkills >= 5:
		score += 5
	}

	return clamp(score)
}

func categoryMatchRate(matches []tailor.KeywordMatch, category tailor.KeywordCategory) float64 {
	total, matched := 0, 0
	for _, m := range matches {
		if m.Keyword.Category != category {
			continue
		}
		total++
		if m.IsMatched() {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

func countMatched(matches []tailor.KeywordMatch, category tailor.KeywordCategory) int {
	count := 0
	for _, m := range matches {
		if m.Keyword.Category == category && m.IsMatched() {
			count++
		}
	}
	return count
}

func calculateEducationScore(resume *tailor.Resume) float64 {
	if len(resume.Education) == 0 {
		return 30
	}

	score := 50.0

	for _, edu := range resume.Education {
		degree := strings.ToLower(edu.Degree)
		switch {
		case containsAny(degree, "phd", "doctorate", "doctor"):
			score += 30
		case containsAny(degree, "master", "ms", "msc", "mba"):
			score += 25
		case containsAny(degree, "bachelor", "bs", "ba", "bsc"):
			score += 20
		case strings.Contains(degree, "diploma"):
			score += 15
		default:
			continue
		}
		break
	}

	relevantFields := []string{"computer", "software", "information", "technology", "engineering", "science"}
	for _, edu := range resume.Education {
		if containsAny(strings.ToLower(edu.Degree), relevantFields...) {
			score += 20
			break
		}
	}

	return clamp(score)
}

func calculateFormatScore(resume *tailor.Resume) float64 {
	score := 20.0 // typeset format is already ATS-friendly

	sectionsPresent := 0
	if resume.Personal.Name != "" {
		sectionsPresent++
	}
	if resume.Personal.Email != "" {
		sectionsPresent++
	}
	if len(resume.Experience) > 0 {
		sectionsPresent++
	}
	if len(resume.Education) > 0 {
		sectionsPresent++
	}
	if len(resume.Skills.Technical) > 0 || len(resume.Skills.Tools) > 0 {
		sectionsPresent++
	}
	score += (float64(sectionsPresent) / 5) * 40

	totalBullets := len(resume.AllBullets)
	switch {
	case totalBullets >= 10 && totalBullets <= 25:
		score += 20
	case (totalBullets >= 5 && totalBullets < 10) || (totalBullets > 25 && totalBullets <= 30):
		score += 15
	default:
		score += 10
	}

	contactScore := 0.0
	if resume.Personal.Email != "" {
		contactScore += 5
	}
	if resume.Personal.Phone != "" {
		contactScore += 5
	}
	if resume.Personal.LinkedIn != "" {
		contactScore += 5
	}
	if resume.Personal.GitHub != "" {
		contactScore += 5
	}
	score += contactScore

	return clamp(score)
}

func calculateSectionScores(resume *tailor.Resume, matches []tailor.KeywordMatch) []tailor.SectionSubScore {
	sectionTexts := map[string]string{
		"summary":    resume.Summary,
		"experience": experienceText(resume),
		"skills":     skillsText(resume),
		"education":  educationText(resume),
	}

	relevantCategories := map[tailor.KeywordCategory]bool{
		tailor.CategoryTechnical: true,
		tailor.CategoryDomain:    true,
		tailor.CategoryTool:      true,
	}
	totalSectionKeywords := 0
	for _, m := range matches {
		if relevantCategories[m.Keyword.Category] {
			totalSectionKeywords++
		}
	}

	var scores []tailor.SectionSubScore
	for _, name := range []string{"summary", "experience", "skills", "education"} {
		text := sectionTexts[name]
		if text == "" {
			continue
		}

		var sectionMatches []tailor.KeywordMatch
		for _, m := range matches {
			if containsString(m.Locations, name) {
				sectionMatches = append(sectionMatches, m)
			}
		}

		wordCount := len(strings.Fields(text))
		matchRate := 0.0
		if totalSectionKeywords > 0 {
			matchRate = float64(len(sectionMatches)) / float64(totalSectionKeywords)
		}
		density := 0.0
		if wordCount > 0 {
			density = float64(len(sectionMatches)) / float64(wordCount) * 100
		}

		quality := 0.0
		if len(sectionMatches) > 0 {
			sum := 0.0
			for _, m := range sectionMatches {
				sum += m.Score()
			}
			quality = sum / float64(len(sectionMatches)) * 100
		}

		suggestion := ""
		if matchRate < 0.3 {
			suggestion = fmt.Sprintf("Add more relevant keywords to %s", name)
		} else if density < 2 && (name == "experience" || name == "skills") {
			suggestion = fmt.Sprintf("Increase keyword density in %s", name)
		}

		scores = append(scores, tailor.SectionSubScore{
			Section:    name,
			Matches:    len(sectionMatches),
			Totals:     totalSectionKeywords,
			MatchRate:  matchRate,
			Density:    density,
			Quality:    quality,
			Suggestion: suggestion,
		})
	}

	return scores
}

func experienceText(resume *tailor.Resume) string {
	var parts []string
	for _, exp := range resume.Experience {
		parts = append(parts, exp.Title, exp.Company)
		for _, b := range exp.Bullets {
			parts = append(parts, b.Text)
		}
	}
	return joinNonEmpty(parts)
}

func skillsText(resume *tailor.Resume) string {
	var parts []string
	parts = append(parts, resume.Skills.Technical...)
	parts = append(parts, resume.Skills.Tools...)
	parts = append(parts, resume.Skills.Languages...)
	return joinNonEmpty(parts)
}

func educationText(resume *tailor.Resume) string {
	var parts []string
	for _, edu := range resume.Education {
		parts = append(parts, edu.Degree, edu.Institution)
	}
	return joinNonEmpty(parts)
}

// generateRecommendations buckets advice by urgency, per
// _generate_recommendations: critical missing keywords, weakly matched
// keywords, low-frequency important keywords, nice-to-have gaps, and
// structural suggestions.
func generateRecommendations(matches []tailor.KeywordMatch, resume *tailor.Resume) (critical, improvements, enhancements []string) {
	for _, m := range take(filterMissing(matches, 0.8), 5) {
		critical = append(critical, fmt.Sprintf("Add '%s' - key requirement in JD (importance %.1f)", m.Keyword.Text, m.Keyword.Importance))
	}

	var weak []tailor.KeywordMatch
	for _, m := range matches {
		if (m.MatchType == tailor.MatchPartial || m.MatchType == tailor.MatchStemmed) && m.Keyword.Importance >= 0.6 {
			weak = append(weak, m)
		}
	}
	for _, m := range take(weak, 5) {
		improvements = append(improvements, fmt.Sprintf("Strengthen '%s' - currently matched as '%s'", m.Keyword.Text, m.MatchedText))
	}

	var lowFreq []tailor.KeywordMatch
	for _, m := range matches {
		if (m.MatchType == tailor.MatchExact || m.MatchType == tailor.MatchSynonym) && m.Frequency == 1 && m.Keyword.Importance >= 0.7 {
			lowFreq = append(lowFreq, m)
		}
	}
	for _, m := range take(lowFreq, 3) {
		improvements = append(improvements, fmt.Sprintf("Use '%s' more frequently - currently only appears once", m.Keyword.Text))
	}

	var niceToHave []tailor.KeywordMatch
	for _, m := range matches {
		if !m.IsMatched() && m.Keyword.Importance >= 0.4 && m.Keyword.Importance < 0.6 {
			niceToHave = append(niceToHave, m)
		}
	}
	for _, m := range take(niceToHave, 5) {
		enhancements = append(enhancements, fmt.Sprintf("Consider adding '%s' to boost relevance", m.Keyword.Text))
	}

	if resume.Summary == "" {
		improvements = append(improvements, "Add a professional summary highlighting key qualifications")
	}
	if len(resume.AllBullets) < 10 {
		improvements = append(improvements, "Add more bullet points with quantified achievements")
	}
	if len(resume.Certifications) == 0 {
		enhancements = append(enhancements, "Add relevant certifications if you have any")
	}

	return critical, improvements, enhancements
}

func filterMissing(matches []tailor.KeywordMatch, minImportance float64) []tailor.KeywordMatch {
	var out []tailor.KeywordMatch
	for _, m := range matches {
		if !m.IsMatched() && m.Keyword.Importance >= minImportance {
			out = append(out, m)
		}
	}
	return out
}

func take(matches []tailor.KeywordMatch, n int) []tailor.KeywordMatch {
	if len(matches) > n {
		return matches[:n]
	}
	return matches
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func joinNonEmpty(parts []string) string {
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
