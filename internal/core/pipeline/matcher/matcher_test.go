package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/matcher"
)

func sampleResume() *tailor.Resume {
	r := &tailor.Resume{
		Summary: "Backend engineer focused on Kafka and containerized deployments.",
		Experience: []tailor.Experience{
			{
				Title:   "Platform Engineer",
				Company: "Acme Corp",
				Bullets: []tailor.Bullet{
					{Text: "Managed Kafka clusters serving 500M messages daily, increasing throughput by 40%."},
					{Text: "Automated deployments using Kubernetes and Docker."},
				},
			},
		},
		Skills: tailor.Skills{Technical: []string{"Kafka", "Kubernetes", "Docker"}},
	}
	r.BuildIndex()
	return r
}

func TestMatchExact(t *testing.T) {
	kws := []tailor.Keyword{{Text: "kafka", Category: tailor.CategoryTechnical, Importance: 0.9}}

	matches := matcher.Match(sampleResume(), kws)

	require.Len(t, matches, 1)
	assert.Equal(t, tailor.MatchExact, matches[0].MatchType)
	assert.True(t, matches[0].IsMatched())
	assert.Greater(t, matches[0].Frequency, 0)
}

func TestMatchSynonym(t *testing.T) {
	kws := []tailor.Keyword{{
		Text:       "container orchestration",
		Category:   tailor.CategoryTechnical,
		Importance: 0.8,
		Synonyms:   []string{"kubernetes"},
	}}

	matches := matcher.Match(sampleResume(), kws)

	require.Len(t, matches, 1)
	assert.Equal(t, tailor.MatchSynonym, matches[0].MatchType)
}

func TestMatchMissing(t *testing.T) {
	kws := []tailor.Keyword{{Text: "cobol", Category: tailor.CategoryTechnical, Importance: 0.7}}

	matches := matcher.Match(sampleResume(), kws)

	require.Len(t, matches, 1)
	assert.Equal(t, tailor.MatchMissing, matches[0].MatchType)
	assert.False(t, matches[0].IsMatched())
	assert.Equal(t, 0.0, matches[0].Score())
}

func TestMatchContextScoreDoesNotCountSubstringOccurrences(t *testing.T) {
	resume := &tailor.Resume{
		Summary: "Managed api integration work across teams.",
		Experience: []tailor.Experience{
			{
				Title:   "Platform Engineer",
				Company: "Acme Corp",
				Bullets: []tailor.Bullet{
					{Text: "Delivered rapid improvements, increased efficiency by 20%."},
				},
			},
		},
	}
	resume.BuildIndex()

	kws := []tailor.Keyword{{Text: "api", Category: tailor.CategoryTechnical, Importance: 0.8}}
	matches := matcher.Match(resume, kws)

	require.Len(t, matches, 1)
	assert.Equal(t, tailor.MatchExact, matches[0].MatchType)
	assert.Equal(t, 1, matches[0].Frequency, "\"api\" appears once as a whole word; \"rapid\" is not an occurrence")
	assert.Equal(t, 0.3, matches[0].ContextScore, "only the real 'api' occurrence's action-verb context should be credited, not the unrelated 'rapid' window's quantify/result evidence")
}

func TestMatchContextScoreRewardsActionAndQuantification(t *testing.T) {
	kws := []tailor.Keyword{{Text: "kafka", Category: tailor.CategoryTechnical, Importance: 0.9}}

	matches := matcher.Match(sampleResume(), kws)

	require.Len(t, matches, 1)
	assert.Greater(t, matches[0].ContextScore, 0.0, "expected the action-verb and quantified context near 'kafka' to be credited")
}
