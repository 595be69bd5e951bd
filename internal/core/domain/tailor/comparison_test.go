package tailor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

func TestBulletChangeIsSignificant(t *testing.T) {
	cases := []struct {
		name   string
		change tailor.BulletChange
		want   bool
	}{
		{"added is always significant", tailor.BulletChange{ChangeType: "added"}, true},
		{"removed is always significant", tailor.BulletChange{ChangeType: "removed"}, true},
		{"ai_enhanced with keywords is significant", tailor.BulletChange{ChangeType: "ai_enhanced", KeywordsAdded: []string{"kafka"}}, true},
		{"ai_enhanced without keywords is not", tailor.BulletChange{ChangeType: "ai_enhanced"}, false},
		{"modified below threshold is significant", tailor.BulletChange{ChangeType: "modified", SimilarityScore: 0.5}, true},
		{"modified above threshold is not", tailor.BulletChange{ChangeType: "modified", SimilarityScore: 0.9}, false},
		{"unchanged is never significant", tailor.BulletChange{ChangeType: "unchanged"}, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.change.IsSignificant(), c.name)
	}
}

func TestResumeComparisonHasSignificantChanges(t *testing.T) {
	assert.True(t, tailor.ResumeComparison{ChangeScore: 10.1}.HasSignificantChanges())
	assert.False(t, tailor.ResumeComparison{ChangeScore: 10.0}.HasSignificantChanges())
	assert.False(t, tailor.ResumeComparison{ChangeScore: 0}.HasSignificantChanges())
}

func TestResumeComparisonChangeSummaryNoChanges(t *testing.T) {
	c := tailor.ResumeComparison{}
	assert.Equal(t, "no significant changes", c.ChangeSummary())
}

func TestResumeComparisonChangeSummaryCombinesParts(t *testing.T) {
	c := tailor.ResumeComparison{
		BulletsAIEnhanced: 1,
		KeywordsAdded:     []string{"kafka", "kubernetes"},
		SummaryChange:     &tailor.SectionChange{ChangeType: "modified"},
	}

	assert.Equal(t, "1 bullet enhanced, 2 keywords added, summary updated", c.ChangeSummary())
}

func TestResumeComparisonChangeSummaryIgnoresUnchangedSummary(t *testing.T) {
	c := tailor.ResumeComparison{
		KeywordsAdded: []string{"kafka"},
		SummaryChange: &tailor.SectionChange{ChangeType: "unchanged"},
	}

	assert.Equal(t, "1 keyword added", c.ChangeSummary())
}
