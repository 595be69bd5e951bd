package tailor

import (
	"fmt"
	"strings"
	"time"
)

// BulletChange describes what happened to a single bullet between the
// original résumé and a tailored variant.
type BulletChange struct {
	ChangeType          string // "added", "removed", "modified", "unchanged", "ai_enhanced"
	OriginalText        string
	NewText             string
	PositionOriginal    int
	PositionNew         int
	HasPositionOriginal bool
	HasPositionNew      bool
	KeywordsAdded       []string
	SimilarityScore     float64
}

// IsSignificant reports whether this change is worth surfacing to a reader
// skimming a diff rather than every bullet.
func (b BulletChange) IsSignificant() bool {
	switch b.ChangeType {
	case "added", "removed":
		return true
	case "ai_enhanced":
		return len(b.KeywordsAdded) > 0
	case "modified":
		return b.SimilarityScore < 0.7
	default:
		return false
	}
}

// SectionChange describes how one named section (e.g. Summary) differs
// between the original résumé and a tailored variant.
type SectionChange struct {
	SectionName     string
	OriginalContent string
	NewContent      string
	ChangeType      string // "modified", "unchanged", "added", "removed"
	WordCountDelta  int
	KeywordsAdded   []string
}

// ResumeComparison is the complete diff between an original résumé and a
// tailored variant.
type ResumeComparison struct {
	OriginalPath string
	VariantPath  string
	ComparedAt   time.Time

	SummaryChange *SectionChange

	BulletChanges []BulletChange

	TotalBulletsOriginal int
	TotalBulletsNew      int
	BulletsAdded         int
	BulletsRemoved       int
	BulletsModified      int
	BulletsAIEnhanced    int

	KeywordsAdded []string

	SimilarityScore float64 // 0-1
	ChangeScore     float64 // 0-100, how much changed
}

// HasSignificantChanges reports whether the variant diverges meaningfully
// from the original.
func (c ResumeComparison) HasSignificantChanges() bool {
	return c.ChangeScore > 10.0
}

// ChangeSummary is a one-line human-readable summary of the comparison.
func (c ResumeComparison) ChangeSummary() string {
	var parts []string
	if c.BulletsAIEnhanced > 0 {
		parts = append(parts, pluralize(c.BulletsAIEnhanced, "bullet enhanced", "bullets enhanced"))
	}
	if len(c.KeywordsAdded) > 0 {
		parts = append(parts, pluralize(len(c.KeywordsAdded), "keyword added", "keywords added"))
	}
	if c.SummaryChange != nil && c.SummaryChange.ChangeType != "unchanged" {
		parts = append(parts, "summary updated")
	}
	if len(parts) == 0 {
		return "no significant changes"
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
