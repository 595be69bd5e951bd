// Package selector implements the Bullet Selector: scoring every résumé
// bullet against a job description and greedily allocating a fixed total
// budget across experiences.
//
// Grounded on original_source/resume/tailoring/bullet_selector.py.
package selector

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

// Config bounds how many bullets the selector picks.
type Config struct {
	TargetBullets    int
	MinBulletsPerJob int
	MaxBulletsPerJob int
}

// DefaultConfig mirrors VariantGenerationConfig's defaults.
func DefaultConfig() Config {
	return Config{TargetBullets: 12, MinBulletsPerJob: 1, MaxBulletsPerJob: 4}
}

var strongVerbs = []string{
	"architected", "designed", "implemented", "optimized",
	"automated", "led", "managed", "developed", "deployed",
	"reduced", "increased", "improved", "scaled",
}

var quantifyPattern = regexp.MustCompile(`\d+[%+]?`)

type scoredBullet struct {
	exp    *tailor.Experience
	bullet tailor.Bullet
	score  float64
}

// Select scores every bullet in resume against jdKeywords/jdText and
// allocates the config's target budget across experiences.
func Select(resume *tailor.Resume, jdText string, jdKeywords []string, cfg Config) []tailor.ExperienceSection {
	experiences := make([]*tailor.Experience, len(resume.Experience))
	for i := range resume.Experience {
		experiences[i] = &resume.Experience[i]
	}

	var allScored []scoredBullet
	for _, exp := range experiences {
		for _, bullet := range exp.Bullets {
			allScored = append(allScored, scoredBullet{exp, bullet, scoreBullet(bullet, jdKeywords, jdText)})
		}
	}

	sort.SliceStable(allScored, func(i, j int) bool { return allScored[i].score > allScored[j].score })

	type expBuild struct {
		experience *tailor.Experience
		bullets    []scoredBullet
	}
	order := make([]*tailor.Experience, 0, len(experiences))
	byExp := make(map[*tailor.Experience]*expBuild)

	totalSelected := 0
	for _, sb := range allScored {
		build, ok := byExp[sb.exp]
		if !ok {
			build = &expBuild{experience: sb.exp}
			byExp[sb.exp] = build
			order = append(order, sb.exp)
		}

		if len(build.bullets) >= cfg.MaxBulletsPerJob {
			continue
		}
		// Deliberate carry-over from the original: once the total budget is
		// reached the loop stops entirely, even though later (lower-scoring)
		// experiences in `order` may still have zero bullets at this point.
		if totalSelected >= cfg.TargetBullets {
			break
		}

		build.bullets = append(build.bullets, sb)
		totalSelected++
	}

	for _, exp := range order {
		build := byExp[exp]
		if len(build.bullets) >= cfg.MinBulletsPerJob {
			continue
		}

		selected := make(map[string]bool, len(build.bullets))
		for _, sb := range build.bullets {
			selected[sb.bullet.ID] = true
		}

		need := cfg.MinBulletsPerJob - len(build.bullets)
		for _, bullet := range exp.Bullets {
			if need <= 0 {
				break
			}
			if selected[bullet.ID] {
				continue
			}
			build.bullets = append(build.bullets, scoredBullet{exp, bullet, scoreBullet(bullet, jdKeywords, jdText)})
			need--
		}
	}

	sections := make([]tailor.ExperienceSection, 0, len(order))
	for _, exp := range order {
		build := byExp[exp]
		selectedBullets := make([]tailor.SelectedBullet, 0, len(build.bullets))
		for _, sb := range build.bullets {
			selectedBullets = append(selectedBullets, tailor.SelectedBullet{
				Bullet:          sb.bullet,
				RelevanceScore:  sb.score,
				SelectionReason: selectionReason(sb.bullet, sb.score, jdKeywords),
			})
		}
		sections = append(sections, tailor.ExperienceSection{
			Experience:      *exp,
			SelectedBullets: selectedBullets,
			TotalAvailable:  len(exp.Bullets),
		})
	}

	return sections
}

// scoreBullet scores a bullet's relevance in [0,1]: keyword coverage (40%),
// quantification (20%), action-verb strength (15%), length (10%), recency
// (15%).
func scoreBullet(bullet tailor.Bullet, jdKeywords []string, jdText string) float64 {
	score := 0.0
	textLower := strings.ToLower(bullet.Text)

	topKeywords := jdKeywords
	if len(topKeywords) > 20 {
		topKeywords = topKeywords[:20]
	}
	matched := 0
	for _, kw := range topKeywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			matched++
		}
	}
	score += min(float64(matched)/5.0, 1.0) * 0.4

	if quantifyPattern.MatchString(bullet.Text) {
		score += 0.2
	}

	fields := strings.Fields(bullet.Text)
	firstWord := ""
	if len(fields) > 0 {
		firstWord = strings.ToLower(strings.Trim(fields[0], ".,;:"))
	}
	switch {
	case containsExact(strongVerbs, firstWord):
		score += 0.15
	case containsAny(textLower, strongVerbs):
		score += 0.10
	}

	wordCount := len(fields)
	switch {
	case wordCount >= 10 && wordCount <= 25:
		score += 0.10
	case wordCount >= 8 && wordCount <= 30:
		score += 0.05
	}

	switch {
	case bullet.Subsection != "" && strings.Contains(strings.ToLower(bullet.Subsection), "present"):
		score += 0.15
	case bullet.Subsection != "" && containsAny(bullet.Subsection, []string{"2024", "2023", "2022"}):
		score += 0.10
	default:
		score += 0.05
	}

	return min(score, 1.0)
}

func selectionReason(bullet tailor.Bullet, score float64, jdKeywords []string) string {
	var reasons []string
	textLower := strings.ToLower(bullet.Text)

	top10 := jdKeywords
	if len(top10) > 10 {
		top10 = top10[:10]
	}
	var matched []string
	for _, kw := range top10 {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	if len(matched) > 0 {
		if len(matched) > 3 {
			matched = matched[:3]
		}
		reasons = append(reasons, fmt.Sprintf("Matches keywords: %s", strings.Join(matched, ", ")))
	}

	if quantifyPattern.MatchString(bullet.Text) {
		reasons = append(reasons, "Contains quantifiable results")
	}

	if containsAny(textLower, []string{"architected", "designed", "implemented", "optimized", "automated", "led"}) {
		reasons = append(reasons, "Strong action verb")
	}

	if score >= 0.8 {
		reasons = append(reasons, "High relevance score")
	}

	if len(reasons) == 0 {
		return "Relevant to role"
	}
	return strings.Join(reasons, "; ")
}

// ReorderByRelevance sorts each section's selected bullets highest-score
// first, in place.
func ReorderByRelevance(sections []tailor.ExperienceSection) []tailor.ExperienceSection {
	for i := range sections {
		bullets := sections[i].SelectedBullets
		sort.SliceStable(bullets, func(a, b int) bool { return bullets[a].RelevanceScore > bullets[b].RelevanceScore })
	}
	return sections
}

func containsExact(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
