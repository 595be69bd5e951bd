package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/fit"
)

func seniorCandidate() *tailor.Resume {
	r := &tailor.Resume{
		Personal: tailor.PersonalInfo{Name: "Jane Doe"},
		Skills: tailor.Skills{
			Technical: []string{"Kafka", "Kubernetes", "Docker", "Terraform", "AWS"},
		},
		Education: []tailor.Education{
			{Degree: "Bachelor of Science in Computer Science", Institution: "State University"},
		},
		Certifications: []string{"AWS Certified Solutions Architect"},
		Experience: []tailor.Experience{
			{
				Title:     "Staff Platform Engineer",
				Company:   "Acme Corp",
				StartDate: "2019",
				EndDate:   "Present",
				Current:   true,
				Bullets: []tailor.Bullet{
					{Text: "Led the Kafka platform team, architecting clusters serving 2B events/day."},
				},
			},
			{
				Title:     "Senior Platform Engineer",
				Company:   "Beta Inc",
				StartDate: "2015",
				EndDate:   "2019",
			},
		},
	}
	r.BuildIndex()
	return r
}

func juniorCandidate() *tailor.Resume {
	r := &tailor.Resume{
		Personal:   tailor.PersonalInfo{Name: "John Smith"},
		Experience: []tailor.Experience{{Title: "Intern", Company: "Acme Corp", StartDate: "2024", EndDate: "Present"}},
	}
	r.BuildIndex()
	return r
}

func seniorPlatformRole() tailor.JobRequirements {
	return tailor.JobRequirements{
		JobTitle:        "Staff Platform Engineer",
		ExperienceLevel: tailor.ExperienceSenior,
		RequiredSkills: map[string]tailor.SkillLevel{
			"kafka":      tailor.SkillAdvanced,
			"kubernetes": tailor.SkillAdvanced,
		},
		PreferredSkills:    map[string]tailor.SkillLevel{"terraform": tailor.SkillIntermediate},
		MinYearsExperience: 7,
		EducationRequired:  "Bachelor",
	}
}

func TestScoreSeniorCandidateOutscoresJunior(t *testing.T) {
	senior := fit.Score(seniorCandidate(), seniorPlatformRole(), 2026)
	junior := fit.Score(juniorCandidate(), seniorPlatformRole(), 2026)

	assert.Greater(t, senior.Overall, junior.Overall)
	assert.GreaterOrEqual(t, senior.Overall, 0.0)
	assert.LessOrEqual(t, senior.Overall, 100.0)
}

func TestScorePopulatesSkillMatchesAndGaps(t *testing.T) {
	result := fit.Score(seniorCandidate(), seniorPlatformRole(), 2026)

	require.NotEmpty(t, result.SkillMatches)

	result2 := fit.Score(juniorCandidate(), seniorPlatformRole(), 2026)
	assert.NotEmpty(t, result2.SkillGaps, "junior candidate missing required skills should produce gaps")
}

func TestScoreSetsFitLevelConsistentWithOverall(t *testing.T) {
	result := fit.Score(seniorCandidate(), seniorPlatformRole(), 2026)
	assert.Equal(t, tailor.DetermineFitLevel(result.Overall), result.FitLevel)
}

func TestScoreDefaultsCandidateNameWhenMissing(t *testing.T) {
	anon := &tailor.Resume{}
	anon.BuildIndex()

	result := fit.Score(anon, seniorPlatformRole(), 2026)
	assert.Equal(t, "Unknown", result.CandidateName)
}
