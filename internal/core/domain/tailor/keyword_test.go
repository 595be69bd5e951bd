package tailor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

func TestKeywordCategoryPriorityOrdering(t *testing.T) {
	assert.Greater(t, tailor.CategoryRequired.Priority(), tailor.CategoryTechnical.Priority())
	assert.Equal(t, tailor.CategoryTechnical.Priority(), tailor.CategoryCertification.Priority())
	assert.Greater(t, tailor.CategoryTechnical.Priority(), tailor.CategoryDomain.Priority())
	assert.Greater(t, tailor.CategoryDomain.Priority(), tailor.CategoryExperience.Priority())
	assert.Greater(t, tailor.CategoryExperience.Priority(), tailor.CategorySoftSkill.Priority())
}

func TestKeywordKeyNormalizesCase(t *testing.T) {
	a := tailor.Keyword{Text: "  Kafka  "}
	b := tailor.Keyword{Text: "kafka"}

	assert.Equal(t, "kafka", a.Key())
	assert.Equal(t, a.Key(), b.Key())
}

func TestKeywordMatchScoreMissingIsZero(t *testing.T) {
	m := tailor.KeywordMatch{MatchType: tailor.MatchMissing, ContextScore: 1.0}
	assert.Equal(t, 0.0, m.Score())
	assert.False(t, m.IsMatched())
}

func TestKeywordMatchScoreExactSingleOccurrence(t *testing.T) {
	m := tailor.KeywordMatch{MatchType: tailor.MatchExact, Frequency: 1, ContextScore: 0}
	assert.Equal(t, 1.0, m.Score())
	assert.True(t, m.IsMatched())
}

func TestKeywordMatchScoreFrequencyMultiplierCapsAtThirtyPercent(t *testing.T) {
	low := tailor.KeywordMatch{MatchType: tailor.MatchPartial, Frequency: 1}
	high := tailor.KeywordMatch{MatchType: tailor.MatchPartial, Frequency: 10}

	assert.InDelta(t, 0.6, low.Score(), 0.0001)
	assert.InDelta(t, 0.6*1.3, high.Score(), 0.0001)
}

func TestKeywordMatchScoreNeverExceedsOne(t *testing.T) {
	m := tailor.KeywordMatch{MatchType: tailor.MatchExact, Frequency: 10, ContextScore: 1.0}
	assert.Equal(t, 1.0, m.Score())
}

func TestKeywordMatchScoreOrderingByMatchType(t *testing.T) {
	exact := tailor.KeywordMatch{MatchType: tailor.MatchExact, Frequency: 1}
	synonym := tailor.KeywordMatch{MatchType: tailor.MatchSynonym, Frequency: 1}
	stemmed := tailor.KeywordMatch{MatchType: tailor.MatchStemmed, Frequency: 1}
	partial := tailor.KeywordMatch{MatchType: tailor.MatchPartial, Frequency: 1}

	assert.Greater(t, exact.Score(), synonym.Score())
	assert.Greater(t, synonym.Score(), stemmed.Score())
	assert.Greater(t, stemmed.Score(), partial.Score())
}
