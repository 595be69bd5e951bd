// Package matcher implements the Matcher: locating job-description
// keywords inside a parsed résumé via exact, synonym, stemmed, and fuzzy
// matching, in that fixed priority order.
//
// Grounded on original_source/resume/ats/matcher.py.
package matcher

import (
	"regexp"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/textsim"
)

const defaultFuzzyThreshold = 0.85

var (
	contextActionWords     = []string{"managed", "implemented", "developed", "created", "designed", "optimized", "improved", "configured", "automated", "deployed"}
	contextQuantifyPattern = regexp.MustCompile(`\d+[%+]?`)
	contextResultWords     = []string{"increased", "reduced", "improved", "achieved", "delivered"}
)

// Match locates every keyword in keywords against resume, trying exact,
// synonym, stemmed, then fuzzy matching in that order and stopping at the
// first that hits.
func Match(resume *tailor.Resume, keywords []tailor.Keyword) []tailor.KeywordMatch {
	fullText := buildResumeText(resume)
	sectionTexts := buildSectionTexts(resume)

	matches := make([]tailor.KeywordMatch, 0, len(keywords))
	for _, kw := range keywords {
		matches = append(matches, matchSingleKeyword(kw, fullText, sectionTexts))
	}
	return matches
}

func buildResumeText(r *tailor.Resume) string {
	var parts []string
	parts = append(parts, r.Personal.Name, r.Summary)
	for _, exp := range r.Experience {
		parts = append(parts, exp.Title, exp.Company)
		for _, b := range exp.Bullets {
			parts = append(parts, b.Text)
		}
	}
	for _, edu := range r.Education {
		parts = append(parts, edu.Degree, edu.Institution)
	}
	parts = append(parts, r.Skills.Technical...)
	parts = append(parts, r.Skills.Tools...)
	parts = append(parts, r.Skills.Languages...)
	parts = append(parts, r.Certifications...)

	return strings.ToLower(joinNonEmpty(parts))
}

func buildSectionTexts(r *tailor.Resume) map[string]string {
	sections := make(map[string]string)
	sections["summary"] = strings.ToLower(r.Summary)

	var exp []string
	for _, e := range r.Experience {
		exp = append(exp, e.Title, e.Company)
		for _, b := range e.Bullets {
			exp = append(exp, b.Text)
		}
	}
	sections["experience"] = strings.ToLower(joinNonEmpty(exp))

	var skills []string
	skills = append(skills, r.Skills.Technical...)
	skills = append(skills, r.Skills.Tools...)
	sections["skills"] = strings.ToLower(joinNonEmpty(skills))

	var edu []string
	for _, e := range r.Education {
		edu = append(edu, e.Degree, e.Institution)
	}
	sections["education"] = strings.ToLower(joinNonEmpty(edu))

	return sections
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

func matchSingleKeyword(kw tailor.Keyword, fullText string, sectionTexts map[string]string) tailor.KeywordMatch {
	if m, ok := exactMatch(kw, kw.Text, fullText, sectionTexts, tailor.MatchExact); ok {
		return m
	}
	for _, syn := range kw.Synonyms {
		if m, ok := exactMatch(kw, syn, fullText, sectionTexts, tailor.MatchSynonym); ok {
			return m
		}
	}
	if m, ok := stemmedMatch(kw, fullText, sectionTexts); ok {
		return m
	}
	if m, ok := fuzzyMatch(kw, fullText); ok {
		return m
	}

	return tailor.KeywordMatch{Keyword: kw, MatchType: tailor.MatchMissing}
}

func exactMatch(kw tailor.Keyword, needle, fullText string, sectionTexts map[string]string, matchType tailor.MatchType) (tailor.KeywordMatch, bool) {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(needle)) + `\b`)
	if err != nil {
		return tailor.KeywordMatch{}, false
	}
	locs := pattern.FindAllStringIndex(fullText, -1)
	if len(locs) == 0 {
		return tailor.KeywordMatch{}, false
	}

	var sections []string
	for name, text := range sectionTexts {
		if pattern.MatchString(text) {
			sections = append(sections, name)
		}
	}

	return tailor.KeywordMatch{
		Keyword:      kw,
		MatchType:    matchType,
		MatchedText:  needle,
		Locations:    sections,
		Frequency:    len(locs),
		ContextScore: calculateContextScore(needle, fullText),
	}, true
}

func stemmedMatch(kw tailor.Keyword, fullText string, sectionTexts map[string]string) (tailor.KeywordMatch, bool) {
	target := stem(kw.Text)
	words := wordSplitPattern.FindAllString(fullText, -1)

	counts := make(map[string]int)
	for _, w := range words {
		if stem(w) == target {
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return tailor.KeywordMatch{}, false
	}

	bestWord, bestCount := "", 0
	total := 0
	for w, c := range counts {
		total += c
		if c > bestCount {
			bestWord, bestCount = w, c
		}
	}

	var sections []string
	for name, text := range sectionTexts {
		if strings.Contains(text, bestWord) {
			sections = append(sections, name)
		}
	}

	return tailor.KeywordMatch{
		Keyword:      kw,
		MatchType:    tailor.MatchStemmed,
		MatchedText:  bestWord,
		Locations:    sections,
		Frequency:    total,
		ContextScore: calculateContextScore(bestWord, fullText),
	}, true
}

var wordSplitPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)

func fuzzyMatch(kw tailor.Keyword, fullText string) (tailor.KeywordMatch, bool) {
	target := strings.ToLower(kw.Text)
	words := wordSplitPattern.FindAllString(fullText, -1)

	bestRatio := 0.0
	bestWord := ""
	for _, w := range words {
		ratio := textsim.Ratio(target, strings.ToLower(w))
		if ratio > bestRatio {
			bestRatio = ratio
			bestWord = w
		}
	}
	if bestRatio < defaultFuzzyThreshold {
		return tailor.KeywordMatch{}, false
	}

	frequency := strings.Count(fullText, strings.ToLower(bestWord))

	return tailor.KeywordMatch{
		Keyword:      kw,
		MatchType:    tailor.MatchPartial,
		MatchedText:  bestWord,
		Frequency:    frequency,
		ContextScore: calculateContextScore(bestWord, fullText),
	}, true
}

// calculateContextScore scans every occurrence of keyword in text and
// accumulates evidence of achievement framing (action verb, number,
// outcome word) within a +/-50 char window, capping the running total at
// 0.8 after each occurrence (so once crossed it stays capped), then
// capping the final result at 1.0 — both caps are carried over from
// original_source's _calculate_context_score, the outer one effectively
// redundant given the inner but kept for parity.
func calculateContextScore(keyword, text string) float64 {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return 0
	}

	score := 0.0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		start := max(0, loc[0]-50)
		end := min(len(text), loc[1]+50)
		window := strings.ToLower(text[start:end])

		if containsAny(window, contextActionWords) {
			score += 0.3
		}
		if contextQuantifyPattern.MatchString(window) {
			score += 0.3
		}
		if containsAny(window, contextResultWords) {
			score += 0.2
		}
		if score > 0.8 {
			score = 0.8
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
