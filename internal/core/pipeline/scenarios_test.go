package pipeline_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/ats"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/keywords"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/parser"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/selector"
)

// buildResumeWithBullets assembles a synthetic résumé source with
// numExperiences entries, each holding bulletsPerExp \resumeItem lines
// mentioning Kafka and Kubernetes work.
func buildResumeWithBullets(numExperiences, bulletsPerExp int) string {
	var b strings.Builder
	b.WriteString("\\section{Experience}\n")
	for e := 0; e < numExperiences; e++ {
		fmt.Fprintf(&b, "\\resumeSubheading{Platform Engineer %d}{Jan %d -- Dec %d}{Company %d}{Remote}\n",
			e, 2010+e, 2011+e, e)
		for i := 0; i < bulletsPerExp; i++ {
			fmt.Fprintf(&b,
				"\\resumeItem{Operated Kafka and Kubernetes workloads for project %d.%d, cutting latency by %d%%.}\n",
				e, i, 10+i)
		}
	}
	return b.String()
}

// extractKeywordTexts collects the plain Text field of a slice of keywords,
// for simple "did the extractor surface this term" assertions.
func extractKeywordTexts(kws []tailor.Keyword) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Text
	}
	return out
}

// Scenario 1 (spec.md §8): happy path, JD mentions "kafka" four times in a
// Requirements section and "kubernetes" twice; expect exact matches with
// importance carried for kafka at or above 0.8, a keyword score of at
// least 60, and a bullet selection that lands exactly at the requested
// target when enough bullets exist to reach it.
func TestScenarioHappyPathKeywordExtractionAndSelection(t *testing.T) {
	jobDescription := `
Requirements:
- Required: hands-on Kafka experience operating production Kafka clusters.
- Must have experience with Kafka streams.
- Critical: familiarity with Apache Kafka administration.

Kubernetes and Kubernetes-based container orchestration experience is a plus.
`
	resumeSource := buildResumeWithBullets(6, 5) // 30 bullets, capacity for an 18-bullet selection

	resume, err := parser.Parse(resumeSource)
	require.NoError(t, err)
	require.Len(t, resume.AllBullets, 30)

	jdKeywords := keywords.Extract(jobDescription, 30)
	var kafka *tailor.Keyword
	for i := range jdKeywords {
		if jdKeywords[i].Text == "kafka" {
			kafka = &jdKeywords[i]
		}
	}
	require.NotNil(t, kafka, "kafka should be extracted from the job description")
	assert.GreaterOrEqual(t, kafka.Importance, 0.8)
	assert.Contains(t, extractKeywordTexts(jdKeywords), "kubernetes")

	scored := ats.Score(resume, jobDescription, "Platform Engineer")
	assert.GreaterOrEqual(t, scored.KeywordScore, 60.0)

	var matchedKafka bool
	for _, m := range scored.Matched {
		if m.Keyword.Text == "kafka" && m.MatchType == tailor.MatchExact {
			matchedKafka = true
		}
	}
	assert.True(t, matchedKafka, "kafka should be an exact match given it appears verbatim in the résumé bullets")

	topKeywords := make([]string, len(jdKeywords))
	for i, kw := range jdKeywords {
		topKeywords[i] = kw.Text
	}

	cfg := selector.Config{TargetBullets: 18, MinBulletsPerJob: 1, MaxBulletsPerJob: 4}
	sections := selector.Select(resume, jobDescription, topKeywords, cfg)

	total := 0
	for _, sec := range sections {
		assert.LessOrEqual(t, len(sec.SelectedBullets), cfg.MaxBulletsPerJob)
		total += len(sec.SelectedBullets)
	}
	assert.Equal(t, 18, total, "selector should stop exactly at the requested target when enough bullets are available")
}

// Scenario 3 (spec.md §8): the job description declares "kafka" as required
// twice and the résumé contains no form of "kafka"; expect a critical gap
// naming kafka and a depressed keyword score.
func TestScenarioMissingCriticalKeywordProducesCriticalGap(t *testing.T) {
	jobDescription := `
Requirements:
- Required: Kafka experience operating streaming platforms.
- This is a required skill: Kafka cluster administration.
`
	resumeSource := `
\section{Experience}
\resumeSubheading{Backend Engineer}{2019 -- Present}{Acme Corp}{Remote}
\resumeItem{Built Python microservices deployed on AWS Lambda.}
\resumeItem{Optimized PostgreSQL queries, cutting latency by 40%.}
`
	resume, err := parser.Parse(resumeSource)
	require.NoError(t, err)

	scored := ats.Score(resume, jobDescription, "Backend Engineer")

	var mentionsKafka bool
	for _, c := range scored.Critical {
		if strings.Contains(strings.ToLower(c), "kafka") {
			mentionsKafka = true
		}
	}
	assert.True(t, mentionsKafka, "a required keyword entirely absent from the résumé should surface as a critical gap")
	assert.Less(t, scored.KeywordScore, 50.0, "missing a required, heavily-weighted keyword should depress the keyword component well below a passing score")
}

// Scenario: zero-keyword job description (spec.md §8 boundary behaviors) —
// every match is missing and the keyword component is zero.
func TestBoundaryZeroKeywordJobDescriptionYieldsZeroKeywordScore(t *testing.T) {
	resumeSource := `
\section{Experience}
\resumeSubheading{Engineer}{2020 -- Present}{Acme}{Remote}
\resumeItem{Did valuable engineering work.}
`
	resume, err := parser.Parse(resumeSource)
	require.NoError(t, err)

	scored := ats.Score(resume, "", "Engineer")
	assert.Equal(t, 0.0, scored.KeywordScore)
	assert.Empty(t, scored.Matched, "an empty job description yields no keywords to match")
}

// Scenario: résumé with zero bullets (spec.md §8 boundary behaviors) — the
// bullet selector returns empty sections and the scorer still returns a
// valid, in-range score rather than failing or returning a NaN/negative
// component.
func TestBoundaryZeroBulletResumeStillScores(t *testing.T) {
	resume := &tailor.Resume{
		Experience: []tailor.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2020", Current: true},
		},
	}
	resume.BuildIndex()
	require.Empty(t, resume.AllBullets)

	sections := selector.Select(resume, "Kafka required.", []string{"kafka"}, selector.DefaultConfig())
	for _, sec := range sections {
		assert.Empty(t, sec.SelectedBullets)
	}

	scored := ats.Score(resume, "Kafka required.", "Engineer")
	assert.GreaterOrEqual(t, scored.Overall, 0.0)
	assert.LessOrEqual(t, scored.Overall, 100.0)
	assert.GreaterOrEqual(t, scored.ExperienceScore, 0.0)
	assert.LessOrEqual(t, scored.ExperienceScore, 100.0)
}
