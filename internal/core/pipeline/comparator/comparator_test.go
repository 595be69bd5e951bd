package comparator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/comparator"
)

func resumeWithBullets(summary string, bullets ...string) *tailor.Resume {
	exp := tailor.Experience{Title: "Engineer", Company: "Acme"}
	for i, text := range bullets {
		exp.Bullets = append(exp.Bullets, tailor.Bullet{
			ID:      tailor.BulletID("Acme", i),
			Text:    text,
			Section: "experience",
		})
	}
	r := &tailor.Resume{Summary: summary, Experience: []tailor.Experience{exp}}
	r.BuildIndex()
	return r
}

func TestCompareUnchangedBullets(t *testing.T) {
	original := resumeWithBullets("Backend engineer.", "Built a payments service used by 1M users.")
	variant := resumeWithBullets("Backend engineer.", "Built a payments service used by 1M users.")

	result := comparator.Compare("orig.tex", "variant.tex", original, variant, nil)

	require.Len(t, result.BulletChanges, 1)
	assert.Equal(t, "unchanged", result.BulletChanges[0].ChangeType)
	assert.Equal(t, "unchanged", result.SummaryChange.ChangeType)
	assert.False(t, result.HasSignificantChanges())
}

func TestCompareModifiedBullet(t *testing.T) {
	original := resumeWithBullets("", "Maintained the payment service used by one million users daily.")
	variant := resumeWithBullets("", "Maintained the payment service used by one million users daily with Kafka streaming.")

	result := comparator.Compare("orig.tex", "variant.tex", original, variant, nil)

	require.Len(t, result.BulletChanges, 1)
	change := result.BulletChanges[0]
	assert.Equal(t, "modified", change.ChangeType)
	assert.Contains(t, change.KeywordsAdded, "kafka")
}

func TestCompareAddedAndRemovedBullets(t *testing.T) {
	original := resumeWithBullets("", "Maintained legacy billing system.")
	variant := resumeWithBullets("", "Led migration to microservices architecture.")

	result := comparator.Compare("orig.tex", "variant.tex", original, variant, nil)

	var sawRemoved, sawAdded bool
	for _, c := range result.BulletChanges {
		switch c.ChangeType {
		case "removed":
			sawRemoved = true
			assert.Equal(t, "Maintained legacy billing system.", c.OriginalText)
		case "added":
			sawAdded = true
			assert.Equal(t, "Led migration to microservices architecture.", c.NewText)
		}
	}
	assert.True(t, sawRemoved, "expected a removed bullet change")
	assert.True(t, sawAdded, "expected an added bullet change")
	assert.True(t, result.HasSignificantChanges())
}

func TestCompareAIEnhancedBulletRecognizedFromVariantMetadata(t *testing.T) {
	originalBullet := "Wrote code for the checkout flow."
	enhancedBullet := "Engineered a high-throughput checkout flow handling 10k requests/sec."

	original := resumeWithBullets("", originalBullet)
	variant := resumeWithBullets("", enhancedBullet)

	variantMeta := &tailor.Variant{
		Content: tailor.VariantContent{
			ExperienceSections: []tailor.ExperienceSection{
				{
					SelectedBullets: []tailor.SelectedBullet{
						{
							Bullet:          tailor.Bullet{Text: originalBullet},
							WasEnhanced:     true,
							EnhancedVersion: enhancedBullet,
						},
					},
				},
			},
		},
	}

	result := comparator.Compare("orig.tex", "variant.tex", original, variant, variantMeta)

	require.Len(t, result.BulletChanges, 1)
	assert.Equal(t, "ai_enhanced", result.BulletChanges[0].ChangeType)
	assert.Equal(t, 1, result.BulletsAIEnhanced)
}

func TestBulletChangeIsSignificant(t *testing.T) {
	t.Run("added and removed are always significant", func(t *testing.T) {
		assert.True(t, tailor.BulletChange{ChangeType: "added"}.IsSignificant())
		assert.True(t, tailor.BulletChange{ChangeType: "removed"}.IsSignificant())
	})

	t.Run("modified depends on similarity", func(t *testing.T) {
		assert.True(t, tailor.BulletChange{ChangeType: "modified", SimilarityScore: 0.5}.IsSignificant())
		assert.False(t, tailor.BulletChange{ChangeType: "modified", SimilarityScore: 0.95}.IsSignificant())
	})

	t.Run("ai_enhanced depends on keywords added", func(t *testing.T) {
		assert.True(t, tailor.BulletChange{ChangeType: "ai_enhanced", KeywordsAdded: []string{"kafka"}}.IsSignificant())
		assert.False(t, tailor.BulletChange{ChangeType: "ai_enhanced"}.IsSignificant())
	})

	t.Run("unchanged is never significant", func(t *testing.T) {
		assert.False(t, tailor.BulletChange{ChangeType: "unchanged"}.IsSignificant())
	})
}

func TestResumeComparisonChangeSummary(t *testing.T) {
	t.Run("no changes", func(t *testing.T) {
		c := tailor.ResumeComparison{}
		assert.Equal(t, "no significant changes", c.ChangeSummary())
	})

	t.Run("enhanced bullets and keywords", func(t *testing.T) {
		c := tailor.ResumeComparison{
			BulletsAIEnhanced: 2,
			KeywordsAdded:     []string{"kafka", "kubernetes"},
		}
		assert.Equal(t, "2 bullets enhanced, 2 keywords added", c.ChangeSummary())
	})
}
