// Package enhancer implements the Bullet Enhancer: asking a generative
// backend to rewrite selected bullets, accepting only rewrites that clear
// a confidence threshold.
//
// Grounded on original_source/resume/ai/bullet_enhancer.py.
package enhancer

import (
	"context"
	"regexp"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

const defaultMinConfidence = 0.7

var (
	bulletMarkerPattern = regexp.MustCompile(`^[-*•]\s*`)
	boldMarkdownPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	quantifyPattern     = regexp.MustCompile(`\d+[%+]?`)
)

var actionVerbs = []string{
	"managed", "developed", "implemented", "optimized",
	"designed", "automated", "configured", "deployed",
}

// Enhancer rewrites selected bullets via a ports.BulletEnhancer backend.
type Enhancer struct {
	backend       ports.BulletEnhancer
	minConfidence float64
}

// New constructs an Enhancer with the default 0.7 confidence threshold.
func New(backend ports.BulletEnhancer) *Enhancer {
	return &Enhancer{backend: backend, minConfidence: defaultMinConfidence}
}

// EnhanceBullet rewrites one bullet, returning ok=false if the backend is
// unavailable, declined to answer, or the rewrite didn't clear the
// confidence threshold — callers keep the bullet unchanged in that case.
func (e *Enhancer) EnhanceBullet(ctx context.Context, bullet tailor.Bullet, jobTitle string, missingKeywords []string) (tailor.SelectedBullet, bool) {
	if !e.backend.Available(ctx) {
		return tailor.SelectedBullet{}, false
	}

	raw, err := e.backend.EnhanceBullet(ctx, bullet.Text, jobTitle, missingKeywords)
	if err != nil || raw == "" {
		return tailor.SelectedBullet{}, false
	}

	enhanced := cleanBullet(raw)
	keywordsAdded := findAddedKeywords(bullet.Text, enhanced, missingKeywords)
	improvement := calculateImprovement(enhanced, keywordsAdded)
	confidence := estimateConfidence(bullet.Text, enhanced)

	if confidence < e.minConfidence {
		return tailor.SelectedBullet{}, false
	}

	return tailor.SelectedBullet{
		Bullet:           bullet,
		WasEnhanced:      true,
		EnhancedVersion:  enhanced,
		KeywordsAdded:    keywordsAdded,
		Confidence:       confidence,
		ImprovementScore: improvement,
	}, true
}

// EnhanceBatch tries to enhance up to maxEnhancements of the given
// selected bullets, trying twice as many as the target in case some are
// rejected, and focuses each attempt on the top 3 missing keywords.
func (e *Enhancer) EnhanceBatch(ctx context.Context, sections []tailor.ExperienceSection, jobTitle string, missingKeywords []string, maxEnhancements int) tailor.EnhancementStats {
	top3 := missingKeywords
	if len(top3) > 3 {
		top3 = top3[:3]
	}

	stats := tailor.EnhancementStats{}
	tried := 0
	limit := maxEnhancements * 2

	for si := range sections {
		for bi := range sections[si].SelectedBullets {
			if stats.BulletsEnhanced >= maxEnhancements || tried >= limit {
				return stats
			}
			tried++

			sb := sections[si].SelectedBullets[bi]
			enhanced, ok := e.EnhanceBullet(ctx, sb.Bullet, jobTitle, top3)
			if !ok {
				continue
			}

			enhanced.RelevanceScore = sb.RelevanceScore
			enhanced.SelectionReason = sb.SelectionReason
			sections[si].SelectedBullets[bi] = enhanced

			stats.BulletsEnhanced++
			stats.KeywordsAdded = append(stats.KeywordsAdded, enhanced.KeywordsAdded...)
		}
	}

	return stats
}

func cleanBullet(text string) string {
	text = strings.Trim(text, `"'`)
	text = bulletMarkerPattern.ReplaceAllString(text, "")
	text = boldMarkdownPattern.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

func findAddedKeywords(original, enhanced string, targetKeywords []string) []string {
	originalLower := strings.ToLower(original)
	enhancedLower := strings.ToLower(enhanced)

	var added []string
	for _, kw := range targetKeywords {
		kwLower := strings.ToLower(kw)
		if !strings.Contains(originalLower, kwLower) && strings.Contains(enhancedLower, kwLower) {
			added = append(added, kw)
		}
	}
	return added
}

func calculateImprovement(enhanced string, keywordsAdded []string) float64 {
	score := 0.0

	if len(keywordsAdded) > 0 {
		score += min(float64(len(keywordsAdded))*0.15, 0.5)
	}

	if quantifyPattern.MatchString(enhanced) {
		score += 0.3
	}

	enhancedLower := strings.ToLower(enhanced)
	for _, verb := range actionVerbs {
		if strings.Contains(enhancedLower, verb) {
			score += 0.2
			break
		}
	}

	return min(score, 1.0)
}

func estimateConfidence(original, enhanced string) float64 {
	origLen := len(strings.Fields(original))
	enhLen := len(strings.Fields(enhanced))

	if origLen > 0 && (float64(enhLen) > float64(origLen)*2 || float64(enhLen) < float64(origLen)*0.5) {
		return 0.5
	}

	origWords := wordSet(original)
	enhWords := wordSet(enhanced)
	overlap := 0.0
	if len(origWords) > 0 {
		shared := 0
		for w := range origWords {
			if enhWords[w] {
				shared++
			}
		}
		overlap = float64(shared) / float64(len(origWords))
	}
	if overlap < 0.3 {
		return 0.6
	}

	if enhanced == "" || !isUpperFirst(enhanced) {
		return 0.7
	}

	return 0.9
}

func wordSet(s string) map[string]bool {
	words := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func isUpperFirst(s string) bool {
	r := []rune(s)
	if len(r) == 0 {
		return false
	}
	return r[0] == strings.ToUpper(string(r[0]))[0]
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
