package ats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/ats"
)

const jobDescription = `
Senior Kafka Platform Engineer

Requirements:
- Extensive experience operating Kafka clusters in production.
- Strong Kubernetes and Docker skills.
- AWS certified preferred.
- Familiarity with Terraform and monitoring/observability tooling.
`

func strongResume() *tailor.Resume {
	r := &tailor.Resume{
		Personal: tailor.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-1234",
			LinkedIn: "linkedin.com/in/janedoe",
			GitHub:   "github.com/janedoe",
		},
		Summary: "Platform engineer specializing in Kafka cluster management and Kubernetes orchestration.",
		Skills: tailor.Skills{
			Technical: []string{"Kafka", "Kubernetes", "Docker", "AWS", "Terraform", "Monitoring", "Python", "Linux", "Git", "Prometheus"},
		},
		Experience: []tailor.Experience{
			{
				Title:   "Senior Platform Engineer",
				Company: "Acme Corp",
				EndDate: "Present",
				Current: true,
				Bullets: []tailor.Bullet{
					{Text: "Managed Kafka clusters handling 2B events/day with zero downtime."},
					{Text: "Automated Kubernetes deployments using Terraform and Docker."},
					{Text: "Implemented monitoring and observability dashboards for production clusters."},
				},
			},
			{Title: "Platform Engineer", Company: "Beta Inc"},
		},
		Education: []tailor.Education{
			{Degree: "Bachelor of Science in Computer Science", Institution: "State University"},
		},
		Certifications: []string{"AWS Certified Solutions Architect"},
	}
	r.BuildIndex()
	return r
}

func weakResume() *tailor.Resume {
	r := &tailor.Resume{
		Summary: "",
		Skills:  tailor.Skills{Technical: []string{"Microsoft Word"}},
	}
	r.BuildIndex()
	return r
}

func TestScoreStrongResumeOutscoresWeakResume(t *testing.T) {
	strong := ats.Score(strongResume(), jobDescription, "Senior Kafka Platform Engineer")
	weak := ats.Score(weakResume(), jobDescription, "Senior Kafka Platform Engineer")

	assert.Greater(t, strong.Overall, weak.Overall)
	assert.Greater(t, strong.KeywordScore, weak.KeywordScore)
	assert.GreaterOrEqual(t, strong.Overall, 0.0)
	assert.LessOrEqual(t, strong.Overall, 100.0)
}

func TestScoreIdentifiesMatchedKeywords(t *testing.T) {
	score := ats.Score(strongResume(), jobDescription, "Senior Kafka Platform Engineer")

	require.NotEmpty(t, score.Matched)

	var sawKafka bool
	for _, m := range score.Matched {
		if m.Keyword.Text == "kafka" {
			sawKafka = true
		}
	}
	assert.True(t, sawKafka, "expected kafka to be a matched keyword")
}

func TestScoreFlagsMissingCriticalKeywordsForWeakResume(t *testing.T) {
	score := ats.Score(weakResume(), jobDescription, "Senior Kafka Platform Engineer")

	assert.NotEmpty(t, score.Critical)
	assert.NotEmpty(t, score.Missing)
}

func TestScoreEmptyResumeStillProducesBoundedScore(t *testing.T) {
	empty := &tailor.Resume{}
	empty.BuildIndex()

	score := ats.Score(empty, jobDescription, "Senior Kafka Platform Engineer")

	assert.GreaterOrEqual(t, score.Overall, 0.0)
	assert.LessOrEqual(t, score.Overall, 100.0)
}
