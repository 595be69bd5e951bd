// Package fit implements the Job-Fit Scorer: a holistic 0-100 assessment
// of candidate/role alignment across skills, experience, trajectory,
// culture, and education, plus their five sub-collaborators.
//
// Grounded on original_source/resume/job_fit/*.py.
package fit

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/textsim"
)

var skillSynonyms = map[string][]string{
	"kafka":      {"apache kafka", "confluent", "kafka streams", "kafka connect"},
	"kubernetes": {"k8s", "container orchestration"},
	"aws":        {"amazon web services", "amazon aws"},
	"python":     {"python3", "python scripting"},
	"ci-cd":      {"ci/cd", "continuous integration", "continuous deployment"},
	"monitoring": {"observability", "telemetry", "alerting"},
	"iac":        {"infrastructure as code", "terraform"},
}

var levelIndicators = map[tailor.SkillLevel][]string{
	tailor.SkillExpert:       {"expert", "mastery", "deep expertise", "architect", "led team", "mentored", "designed from scratch"},
	tailor.SkillAdvanced:     {"advanced", "proficient", "extensive experience", "production", "at scale", "optimized", "implemented"},
	tailor.SkillIntermediate: {"experience with", "worked with", "familiar", "configured", "deployed", "maintained"},
	tailor.SkillBeginner:     {"basic", "learning", "exposure to", "assisted with"},
}

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

// MatchSkills compares the candidate's declared skills against required and
// preferred job skills, returning matches and gaps.
func MatchSkills(resume *tailor.Resume, req tailor.JobRequirements) ([]tailor.SkillMatch, []tailor.SkillGap) {
	candidate := extractCandidateSkills(resume)

	var matches []tailor.SkillMatch
	var gaps []tailor.SkillGap

	for name, level := range req.RequiredSkills {
		if m, ok := matchSingleSkill(name, level, 1.0, candidate); ok {
			matches = append(matches, m)
		} else {
			gaps = append(gaps, tailor.SkillGap{
				SkillName:     name,
				RequiredLevel: level,
				CurrentLevel:  tailor.SkillNone,
				Importance:    1.0,
				GapSeverity:   "critical",
			})
		}
	}

	for name, level := range req.PreferredSkills {
		if m, ok := matchSingleSkill(name, level, 0.5, candidate); ok {
			matches = append(matches, m)
		} else {
			gaps = append(gaps, tailor.SkillGap{
				SkillName:     name,
				RequiredLevel: level,
				CurrentLevel:  tailor.SkillNone,
				Importance:    0.5,
				GapSeverity:   "moderate",
			})
		}
	}

	return matches, gaps
}

type candidateSkill struct {
	name            string
	level           tailor.SkillLevel
	evidence        []string
	yearsExperience *int
}

func extractCandidateSkills(resume *tailor.Resume) map[string]candidateSkill {
	skills := make(map[string]candidateSkill)

	var names []string
	names = append(names, resume.Skills.Technical...)
	names = append(names, resume.Skills.Tools...)
	names = append(names, resume.Skills.Languages...)

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		evidence := findSkillEvidence(resume, key)
		skills[key] = candidateSkill{
			name:            name,
			level:           inferSkillLevel(evidence),
			evidence:        evidence,
			yearsExperience: estimateYears(evidence),
		}
	}

	return skills
}

func findSkillEvidence(resume *tailor.Resume, skill string) []string {
	var evidence []string
	if strings.Contains(strings.ToLower(resume.Summary), skill) {
		evidence = append(evidence, resume.Summary)
	}
	for _, b := range resume.AllBullets {
		if strings.Contains(strings.ToLower(b.Text), skill) {
			evidence = append(evidence, b.Text)
		}
	}
	return evidence
}

func inferSkillLevel(evidence []string) tailor.SkillLevel {
	combined := strings.ToLower(strings.Join(evidence, " "))

	for _, level := range []tailor.SkillLevel{tailor.SkillExpert, tailor.SkillAdvanced, tailor.SkillIntermediate, tailor.SkillBeginner} {
		for _, kw := range levelIndicators[level] {
			if strings.Contains(combined, kw) {
				return level
			}
		}
	}

	switch {
	case len(evidence) >= 5:
		return tailor.SkillAdvanced
	case len(evidence) >= 3:
		return tailor.SkillIntermediate
	case len(evidence) >= 1:
		return tailor.SkillBeginner
	default:
		return tailor.SkillNone
	}
}

func estimateYears(evidence []string) *int {
	combined := strings.ToLower(strings.Join(evidence, " "))
	if m := yearsPattern.FindStringSubmatch(combined); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}

	var years int
	switch {
	case len(evidence) >= 5:
		years = 5
	case len(evidence) >= 3:
		years = 3
	case len(evidence) >= 1:
		years = 1
	default:
		return nil
	}
	return &years
}

func matchSingleSkill(name string, requiredLevel tailor.SkillLevel, importance float64, candidate map[string]candidateSkill) (tailor.SkillMatch, bool) {
	key := strings.ToLower(strings.TrimSpace(name))

	if cs, ok := candidate[key]; ok {
		return buildSkillMatch(name, requiredLevel, cs, importance), true
	}

	for candidateKey, cs := range candidate {
		if areSynonyms(key, candidateKey) {
			return buildSkillMatch(name, requiredLevel, cs, importance), true
		}
	}

	for candidateKey, cs := range candidate {
		if textsim.Ratio(key, candidateKey) >= 0.85 {
			return buildSkillMatch(name, requiredLevel, cs, importance), true
		}
	}

	return tailor.SkillMatch{}, false
}

func areSynonyms(a, b string) bool {
	for canonical, syns := range skillSynonyms {
		group := append([]string{canonical}, syns...)
		hasA, hasB := false, false
		for _, s := range group {
			if s == a {
				hasA = true
			}
			if s == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

func buildSkillMatch(name string, requiredLevel tailor.SkillLevel, cs candidateSkill, importance float64) tailor.SkillMatch {
	matchStrength := 1.0
	if cs.level.Rank() < requiredLevel.Rank() {
		if requiredLevel.Rank() > 0 {
			matchStrength = float64(cs.level.Rank()) / float64(requiredLevel.Rank())
		} else {
			matchStrength = 0
		}
	}
	matchStrength *= importance

	return tailor.SkillMatch{
		SkillName:       name,
		RequiredLevel:   requiredLevel,
		CandidateLevel:  cs.level,
		MatchStrength:   matchStrength,
		Evidence:        cs.evidence,
		YearsExperience: cs.yearsExperience,
	}
}

// FitScore computes the 0-100 skill-fit component from matches and gaps.
func FitScore(matches []tailor.SkillMatch, gaps []tailor.SkillGap) float64 {
	maxPossible := len(matches) + len(gaps)
	if maxPossible == 0 {
		return 0
	}

	matchScore := 0.0
	for _, m := range matches {
		matchScore += m.MatchStrength
	}
	score := (matchScore / float64(maxPossible)) * 100

	critical := 0
	for _, g := range gaps {
		if g.GapSeverity == "critical" {
			critical++
		}
	}
	score -= float64(critical) * 0.2 * 10

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
