package tailor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

func TestDetermineFitLevelBands(t *testing.T) {
	cases := []struct {
		overall float64
		want    tailor.FitLevel
	}{
		{95, tailor.FitExcellent},
		{90, tailor.FitExcellent},
		{85, tailor.FitStrong},
		{80, tailor.FitStrong},
		{75, tailor.FitGood},
		{70, tailor.FitGood},
		{65, tailor.FitModerate},
		{60, tailor.FitModerate},
		{55, tailor.FitWeak},
		{50, tailor.FitWeak},
		{49.9, tailor.FitPoor},
		{0, tailor.FitPoor},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, tailor.DetermineFitLevel(c.overall), "overall=%v", c.overall)
	}
}

func TestSkillLevelRankOrdering(t *testing.T) {
	assert.Greater(t, tailor.SkillExpert.Rank(), tailor.SkillAdvanced.Rank())
	assert.Greater(t, tailor.SkillAdvanced.Rank(), tailor.SkillIntermediate.Rank())
	assert.Greater(t, tailor.SkillIntermediate.Rank(), tailor.SkillBeginner.Rank())
	assert.Greater(t, tailor.SkillBeginner.Rank(), tailor.SkillNone.Rank())
}

func TestExperienceLevelRankOrdering(t *testing.T) {
	assert.Greater(t, tailor.ExperienceSenior.Rank(), tailor.ExperienceMid.Rank())
	assert.Greater(t, tailor.ExperienceMid.Rank(), tailor.ExperienceJunior.Rank())
	assert.Greater(t, tailor.ExperienceJunior.Rank(), tailor.ExperienceEntry.Rank())
}

func TestCultureFitIndicatorsFitScore(t *testing.T) {
	t.Run("no signals scores zero", func(t *testing.T) {
		var c tailor.CultureFitIndicators
		assert.Equal(t, 0.0, c.FitScore())
	})

	t.Run("all signals score to one", func(t *testing.T) {
		c := tailor.CultureFitIndicators{
			CompanySizeMatch:    true,
			IndustryMatch:       true,
			WorkStyleIndicators: []string{"remote-first"},
			ValuesAlignment:     []string{"ownership"},
		}
		assert.Equal(t, 1.0, c.FitScore())
	})

	t.Run("partial signals sum linearly", func(t *testing.T) {
		c := tailor.CultureFitIndicators{CompanySizeMatch: true, IndustryMatch: true}
		assert.Equal(t, 0.6, c.FitScore())
	})
}

func TestCareerTrajectoryIsProgressing(t *testing.T) {
	assert.True(t, tailor.CareerTrajectory{ProgressionTrend: "upward"}.IsProgressing())
	assert.False(t, tailor.CareerTrajectory{ProgressionTrend: "lateral"}.IsProgressing())
}

func TestJobFitScoreIsGoodFit(t *testing.T) {
	assert.True(t, tailor.JobFitScore{Overall: 70}.IsGoodFit())
	assert.False(t, tailor.JobFitScore{Overall: 69.9}.IsGoodFit())
}

func TestJobFitScoreHireRecommendationBands(t *testing.T) {
	cases := []struct {
		overall float64
		want    string
	}{
		{90, "Strong Hire - Excellent fit across all dimensions"},
		{80, "Hire - Good fit with minor gaps"},
		{70, "Consider - Moderate fit, assess cultural factors"},
		{60, "Weak - Significant skill gaps"},
		{30, "No Hire - Poor fit for role"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, tailor.JobFitScore{Overall: c.overall}.HireRecommendation())
	}
}
