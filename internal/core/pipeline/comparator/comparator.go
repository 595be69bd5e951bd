// Package comparator implements the Resume Comparator: diffing an original
// résumé against a tailored variant at the section and bullet level.
//
// Grounded on original_source/resume/tailoring/comparator_fixed.py.
package comparator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/textsim"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

var commonWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// Compare diffs original against variant, using variant's enhancement
// metadata (when non-nil) to recognize AI-rewritten bullets before falling
// back to similarity-based matching.
func Compare(originalPath, variantPath string, original, variant *tailor.Resume, variantMeta *tailor.Variant) tailor.ResumeComparison {
	comparison := tailor.ResumeComparison{
		OriginalPath: originalPath,
		VariantPath:  variantPath,
	}

	summaryChange := compareSection("Summary", original.Summary, variant.Summary)
	comparison.SummaryChange = &summaryChange

	comparison.BulletChanges = compareBullets(original.AllBullets, variant.AllBullets, variantMeta)

	comparison.TotalBulletsOriginal = len(original.AllBullets)
	comparison.TotalBulletsNew = len(variant.AllBullets)
	for _, bc := range comparison.BulletChanges {
		switch bc.ChangeType {
		case "added":
			comparison.BulletsAdded++
		case "removed":
			comparison.BulletsRemoved++
		case "modified":
			comparison.BulletsModified++
		case "ai_enhanced":
			comparison.BulletsAIEnhanced++
		}
	}

	if variantMeta != nil && len(variantMeta.Enhancement.KeywordsAdded) > 0 {
		comparison.KeywordsAdded = variantMeta.Enhancement.KeywordsAdded
	} else {
		comparison.KeywordsAdded = extractAddedKeywords(original, variant)
	}

	comparison.SimilarityScore = calculateSimilarity(original, variant)
	comparison.ChangeScore = (1 - comparison.SimilarityScore) * 100

	return comparison
}

func compareSection(name, original, newText string) tailor.SectionChange {
	var changeType string
	switch {
	case original == newText:
		changeType = "unchanged"
	case original == "":
		changeType = "added"
	case newText == "":
		changeType = "removed"
	default:
		changeType = "modified"
	}

	return tailor.SectionChange{
		SectionName:     name,
		OriginalContent: original,
		NewContent:      newText,
		ChangeType:      changeType,
		WordCountDelta:  len(strings.Fields(newText)) - len(strings.Fields(original)),
		KeywordsAdded:   findNewKeywords(original, newText),
	}
}

// compareBullets aligns original and new bullets in three passes: AI-enhanced
// matches (from variantMeta), remaining bullets by best similarity >= 0.5,
// then whatever is left over is a straight removal/addition.
func compareBullets(original, newBullets []tailor.Bullet, variantMeta *tailor.Variant) []tailor.BulletChange {
	origTexts := make([]string, len(original))
	for i, b := range original {
		origTexts[i] = b.Text
	}
	newTexts := make([]string, len(newBullets))
	for i, b := range newBullets {
		newTexts[i] = b.Text
	}

	enhancedMap := aiEnhancedMap(variantMeta)

	usedOrig := make(map[int]bool)
	usedNew := make(map[int]bool)
	var changes []tailor.BulletChange

	// First pass: bullets the enhancer actually rewrote.
	for i, origText := range origTexts {
		enhancedText, ok := enhancedMap[origText]
		if !ok {
			continue
		}
		for j, newText := range newTexts {
			if usedNew[j] {
				continue
			}
			if newText == enhancedText || textsim.Ratio(enhancedText, newText) > 0.8 {
				changes = append(changes, tailor.BulletChange{
					ChangeType:          "ai_enhanced",
					OriginalText:        origText,
					NewText:             newText,
					PositionOriginal:    i,
					HasPositionOriginal: true,
					PositionNew:         j,
					HasPositionNew:      true,
					KeywordsAdded:       findNewKeywords(origText, newText),
					SimilarityScore:     textsim.Ratio(origText, newText),
				})
				usedOrig[i] = true
				usedNew[j] = true
				break
			}
		}
	}

	// Second pass: remaining bullets matched by best pairwise similarity.
	for i, origText := range origTexts {
		if usedOrig[i] {
			continue
		}

		bestMatch := -1
		bestSimilarity := 0.0
		for j, newText := range newTexts {
			if usedNew[j] {
				continue
			}
			similarity := textsim.Ratio(origText, newText)
			if similarity > bestSimilarity && similarity >= 0.5 {
				bestSimilarity = similarity
				bestMatch = j
			}
		}

		if bestMatch == -1 {
			continue
		}

		newText := newTexts[bestMatch]
		changeType := "modified"
		if bestSimilarity >= 0.9 {
			changeType = "unchanged"
		}

		changes = append(changes, tailor.BulletChange{
			ChangeType:          changeType,
			OriginalText:        origText,
			NewText:             newText,
			PositionOriginal:    i,
			HasPositionOriginal: true,
			PositionNew:         bestMatch,
			HasPositionNew:      true,
			KeywordsAdded:       findNewKeywords(origText, newText),
			SimilarityScore:     bestSimilarity,
		})
		usedOrig[i] = true
		usedNew[bestMatch] = true
	}

	// Third pass: whatever is left over was removed or added outright.
	for i, origText := range origTexts {
		if usedOrig[i] {
			continue
		}
		changes = append(changes, tailor.BulletChange{
			ChangeType:          "removed",
			OriginalText:        origText,
			PositionOriginal:    i,
			HasPositionOriginal: true,
		})
	}
	for j, newText := range newTexts {
		if usedNew[j] {
			continue
		}
		changes = append(changes, tailor.BulletChange{
			ChangeType:     "added",
			NewText:        newText,
			PositionNew:    j,
			HasPositionNew: true,
		})
	}

	return changes
}

// aiEnhancedMap maps an original bullet's text to its enhanced replacement,
// built from the variant's selection/enhancement metadata when available.
func aiEnhancedMap(variantMeta *tailor.Variant) map[string]string {
	enhanced := make(map[string]string)
	if variantMeta == nil {
		return enhanced
	}
	for _, section := range variantMeta.Content.ExperienceSections {
		for _, sb := range section.SelectedBullets {
			if sb.WasEnhanced {
				enhanced[sb.Bullet.Text] = sb.EnhancedVersion
			}
		}
	}
	return enhanced
}

// findNewKeywords returns the significant words present in newText but not
// original: lowercased word-set difference, common words removed, tokens
// longer than 3 characters, capped at the top 10 alphabetically.
func findNewKeywords(original, newText string) []string {
	origWords := wordSet(original)
	newWords := wordSet(newText)

	var meaningful []string
	for w := range newWords {
		if origWords[w] || commonWords[w] {
			continue
		}
		if len(w) > 3 {
			meaningful = append(meaningful, w)
		}
	}

	sort.Strings(meaningful)
	if len(meaningful) > 10 {
		meaningful = meaningful[:10]
	}
	return meaningful
}

func wordSet(s string) map[string]bool {
	words := wordPattern.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// extractAddedKeywords diffs the full text of two résumés (summary plus all
// bullets) when no enhancement metadata is available to read keywords from
// directly.
func extractAddedKeywords(original, newResume *tailor.Resume) []string {
	origParts := make([]string, 0, len(original.AllBullets)+1)
	origParts = append(origParts, original.Summary)
	for _, b := range original.AllBullets {
		origParts = append(origParts, b.Text)
	}

	newParts := make([]string, 0, len(newResume.AllBullets)+1)
	newParts = append(newParts, newResume.Summary)
	for _, b := range newResume.AllBullets {
		newParts = append(newParts, b.Text)
	}

	return findNewKeywords(strings.Join(origParts, " "), strings.Join(newParts, " "))
}

// calculateSimilarity computes overall similarity between the two résumés'
// bullet text as a whole, independent of per-bullet alignment.
func calculateSimilarity(original, newResume *tailor.Resume) float64 {
	origTexts := make([]string, len(original.AllBullets))
	for i, b := range original.AllBullets {
		origTexts[i] = b.Text
	}
	newTexts := make([]string, len(newResume.AllBullets))
	for i, b := range newResume.AllBullets {
		newTexts[i] = b.Text
	}

	return textsim.Ratio(strings.Join(origTexts, " "), strings.Join(newTexts, " "))
}
