package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/keywords"
)

const jobDescription = `
We are looking for a Senior Platform Engineer.

Requirements:
- 5+ years managing Kafka clusters in production, including cluster management and partitioning.
- Strong experience with Kubernetes (k8s) and Docker containerization.
- AWS certified or equivalent cloud experience.
- Familiarity with Terraform and CI/CD pipelines (Jenkins, GitHub).
- Experience with monitoring and observability tooling.
- Excellent communication and collaboration skills required.
`

func TestExtractFindsTechnicalSkills(t *testing.T) {
	kws := keywords.Extract(jobDescription, 30)

	byText := make(map[string]tailor.Keyword)
	for _, k := range kws {
		byText[k.Text] = k
	}

	require.Contains(t, byText, "kafka")
	assert.Equal(t, tailor.CategoryTechnical, byText["kafka"].Category)
	require.Contains(t, byText, "kubernetes")
	require.Contains(t, byText, "docker")
	require.Contains(t, byText, "aws")
	require.Contains(t, byText, "terraform")
}

func TestExtractFindsCertificationsAndSoftSkills(t *testing.T) {
	kws := keywords.Extract(jobDescription, 30)

	var sawCert, sawSoftSkill bool
	for _, k := range kws {
		if k.Category == tailor.CategoryCertification {
			sawCert = true
		}
		if k.Category == tailor.CategorySoftSkill {
			sawSoftSkill = true
		}
	}
	assert.True(t, sawCert, "expected a certification keyword")
	assert.True(t, sawSoftSkill, "expected a soft-skill keyword")
}

func TestExtractRespectsTopNAndDeduplicates(t *testing.T) {
	kws := keywords.Extract(jobDescription, 5)
	assert.LessOrEqual(t, len(kws), 5)

	seen := make(map[string]bool)
	for _, k := range kws {
		assert.False(t, seen[k.Key()], "duplicate keyword key %q", k.Key())
		seen[k.Key()] = true
	}
}

func TestExtractRanksHigherPriorityCategoriesFirst(t *testing.T) {
	kws := keywords.Extract(jobDescription, 30)
	require.NotEmpty(t, kws)

	for i := 1; i < len(kws); i++ {
		prevPriority := kws[i-1].Category.Priority()
		currPriority := kws[i].Category.Priority()
		assert.GreaterOrEqual(t, prevPriority, currPriority, "keywords must be sorted by descending category priority")
	}
}

func TestExtractEmptyDescriptionYieldsNoKeywords(t *testing.T) {
	kws := keywords.Extract("", 10)
	assert.Empty(t, kws)
}
