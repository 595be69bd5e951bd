package fit

import (
	"fmt"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

type levelPair struct {
	from tailor.SkillLevel
	to   tailor.SkillLevel
}

var trainingEstimates = map[levelPair]string{
	{tailor.SkillNone, tailor.SkillBeginner}:         "1-3 months",
	{tailor.SkillNone, tailor.SkillIntermediate}:     "3-6 months",
	{tailor.SkillNone, tailor.SkillAdvanced}:          "6-12 months",
	{tailor.SkillNone, tailor.SkillExpert}:            "1-2 years",
	{tailor.SkillBeginner, tailor.SkillIntermediate}:  "2-4 months",
	{tailor.SkillBeginner, tailor.SkillAdvanced}:      "4-8 months",
	{tailor.SkillBeginner, tailor.SkillExpert}:        "8-18 months",
	{tailor.SkillIntermediate, tailor.SkillAdvanced}:  "3-6 months",
	{tailor.SkillIntermediate, tailor.SkillExpert}:    "6-12 months",
	{tailor.SkillAdvanced, tailor.SkillExpert}:        "3-6 months",
}

var hardSkills = []string{"architecture", "system design", "leadership"}

// AnalyzeGaps enriches each gap with a training-time estimate and
// learnability assessment, and produces development recommendations.
func AnalyzeGaps(gaps []tailor.SkillGap) ([]tailor.SkillGap, []string) {
	enriched := make([]tailor.SkillGap, len(gaps))
	for i, g := range gaps {
		enriched[i] = enrichGap(g)
	}
	return enriched, generateDevelopmentRecommendations(enriched)
}

func enrichGap(gap tailor.SkillGap) tailor.SkillGap {
	trainingTime, ok := trainingEstimates[levelPair{gap.CurrentLevel, gap.RequiredLevel}]
	if !ok {
		trainingTime = "6-12 months"
	}

	canLearn := canLearnSkill(gap.SkillName, gap.CurrentLevel)

	severity := "minor"
	switch {
	case gap.Importance >= 0.9 && strings.Contains(trainingTime, "year"):
		severity = "critical"
	case gap.Importance >= 0.7:
		severity = "moderate"
	}

	gap.TrainingTime = trainingTime
	gap.CanLearn = canLearn
	gap.GapSeverity = severity
	return gap
}

func canLearnSkill(skill string, currentLevel tailor.SkillLevel) bool {
	skillLower := strings.ToLower(skill)
	if currentLevel == tailor.SkillNone {
		for _, hard := range hardSkills {
			if strings.Contains(skillLower, hard) {
				return false
			}
		}
	}
	return true
}

func generateDevelopmentRecommendations(gaps []tailor.SkillGap) []string {
	var critical, moderate []tailor.SkillGap
	for _, g := range gaps {
		switch g.GapSeverity {
		case "critical":
			critical = append(critical, g)
		case "moderate":
			moderate = append(moderate, g)
		}
	}

	var recommendations []string

	if len(critical) > 0 {
		var b strings.Builder
		b.WriteString("Critical Skills to Develop:\n")
		for _, g := range take(critical, 3) {
			fmt.Fprintf(&b, "  • %s (Est. time: %s)\n", g.SkillName, g.TrainingTime)
		}
		recommendations = append(recommendations, b.String())
	}

	if len(moderate) > 0 {
		var b strings.Builder
		b.WriteString("Additional Skills to Consider:\n")
		for _, g := range take(moderate, 3) {
			fmt.Fprintf(&b, "  • %s (Est. time: %s)\n", g.SkillName, g.TrainingTime)
		}
		recommendations = append(recommendations, b.String())
	}

	if len(critical) > 0 {
		recommendations = append(recommendations,
			"Suggested Learning Path:\n"+
				"  1. Start with hands-on projects in critical skills\n"+
				"  2. Consider online courses (Udemy, Coursera, Pluralsight)\n"+
				"  3. Pursue relevant certifications\n"+
				"  4. Contribute to open-source projects")
	}

	return recommendations
}

func take(gaps []tailor.SkillGap, n int) []tailor.SkillGap {
	if len(gaps) <= n {
		return gaps
	}
	return gaps[:n]
}
