package fit

import (
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

var levelKeywords = map[tailor.ExperienceLevel][]string{
	tailor.ExperienceSenior: {"senior", "sr", "lead", "principal", "staff"},
	tailor.ExperienceJunior: {"junior", "jr", "associate"},
	tailor.ExperienceEntry:  {"intern", "trainee", "apprentice"},
}

var specializationKeywords = map[string][]string{
	"Kafka Streaming":     {"kafka", "streaming", "real-time", "event-driven"},
	"Devops":              {"devops", "ci/cd", "automation", "infrastructure"},
	"Cloud Architecture":  {"cloud", "aws", "azure", "architecture"},
	"Data Engineering":    {"data pipeline", "etl", "data processing"},
	"Sre":                 {"sre", "reliability", "monitoring", "observability"},
}

var learningKeywords = []string{
	"learned", "developed expertise", "expanded knowledge",
	"gained experience", "training", "certification",
}

// AnalyzeTrajectory summarizes career progression from a résumé's
// experience history, most-recent entry first (matching résumé ordering).
func AnalyzeTrajectory(resume *tailor.Resume, currentYear int) tailor.CareerTrajectory {
	if len(resume.Experience) == 0 {
		return tailor.CareerTrajectory{
			CurrentLevel:     tailor.ExperienceEntry,
			ProgressionTrend: "unknown",
			ReadyForLevel:    tailor.ExperienceEntry,
		}
	}

	currentLevel := determineLevel(resume.Experience[0])
	trend := analyzeProgression(resume.Experience)
	promotions := countPromotions(resume.Experience)
	avgTenure := calculateAvgTenure(resume.Experience, currentYear)
	specialization := identifySpecialization(resume)
	growthAreas := identifyGrowthAreas(resume)
	readyFor := determineReadiness(currentLevel, trend, promotions, avgTenure)

	return tailor.CareerTrajectory{
		CurrentLevel:     currentLevel,
		ProgressionTrend: trend,
		PromotionsCount:  promotions,
		AvgTenureMonths:  avgTenure,
		Specialization:   specialization,
		GrowthAreas:      growthAreas,
		ReadyForLevel:    readyFor,
	}
}

func determineLevel(exp tailor.Experience) tailor.ExperienceLevel {
	title := strings.ToLower(exp.Title)
	switch {
	case containsAnyKeyword(title, levelKeywords[tailor.ExperienceSenior]):
		return tailor.ExperienceSenior
	case containsAnyKeyword(title, levelKeywords[tailor.ExperienceJunior]):
		return tailor.ExperienceJunior
	case containsAnyKeyword(title, levelKeywords[tailor.ExperienceEntry]):
		return tailor.ExperienceEntry
	default:
		return tailor.ExperienceMid
	}
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func analyzeProgression(experiences []tailor.Experience) string {
	if len(experiences) < 2 {
		return "insufficient_data"
	}

	upward, downward := 0, 0
	for i := 0; i < len(experiences)-1; i++ {
		cur := determineLevel(experiences[i]).Rank()
		next := determineLevel(experiences[i+1]).Rank()
		if cur > next {
			upward++
		} else if cur < next {
			downward++
		}
	}

	switch {
	case upward > downward:
		return "upward"
	case downward > upward:
		return "downward"
	default:
		return "lateral"
	}
}

func countPromotions(experiences []tailor.Experience) int {
	promotions := 0
	for i := 0; i < len(experiences)-1; i++ {
		cur, next := experiences[i], experiences[i+1]
		if cur.Company != next.Company {
			continue
		}
		if determineLevel(cur).Rank() > determineLevel(next).Rank() {
			promotions++
		}
	}
	return promotions
}

func calculateAvgTenure(experiences []tailor.Experience, currentYear int) float64 {
	if len(experiences) == 0 {
		return 0
	}

	totalMonths := 0
	for _, exp := range experiences {
		startYear, startOK := parseYear(exp.StartDate)
		endYear, endOK := parseYear(exp.EndDate)
		if !endOK {
			endYear, endOK = currentYear, true
		}
		if startOK && endOK {
			months := (endYear - startYear) * 12
			if months < 1 {
				months = 1
			}
			totalMonths += months
		}
	}

	return float64(totalMonths) / float64(len(experiences))
}

func identifySpecialization(resume *tailor.Resume) []string {
	var allText []string
	allText = append(allText, resume.Summary)
	for _, b := range resume.AllBullets {
		allText = append(allText, b.Text)
	}
	combined := strings.ToLower(strings.Join(allText, " "))

	var specializations []string
	for name, keywords := range specializationKeywords {
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				matches++
			}
		}
		if matches >= 2 {
			specializations = append(specializations, name)
		}
	}
	return specializations
}

func identifyGrowthAreas(resume *tailor.Resume) []string {
	if len(resume.Experience) == 0 {
		return nil
	}

	recent := resume.Experience[0]
	var bulletTexts []string
	for _, b := range recent.Bullets {
		bulletTexts = append(bulletTexts, b.Text)
	}
	recentText := strings.ToLower(strings.Join(bulletTexts, " "))

	var growthAreas []string
	for _, kw := range learningKeywords {
		if !strings.Contains(recentText, kw) {
			continue
		}
		for _, sentence := range strings.Split(recentText, ".") {
			if strings.Contains(sentence, kw) {
				s := strings.TrimSpace(sentence)
				if len(s) > 100 {
					s = s[:100]
				}
				growthAreas = append(growthAreas, s)
			}
		}
	}

	if len(growthAreas) > 3 {
		growthAreas = growthAreas[:3]
	}
	return growthAreas
}

func determineReadiness(currentLevel tailor.ExperienceLevel, trend string, promotions int, avgTenure float64) tailor.ExperienceLevel {
	progression := map[tailor.ExperienceLevel]tailor.ExperienceLevel{
		tailor.ExperienceEntry:  tailor.ExperienceJunior,
		tailor.ExperienceJunior: tailor.ExperienceMid,
		tailor.ExperienceMid:    tailor.ExperienceSenior,
		tailor.ExperienceSenior: tailor.ExperienceSenior,
	}

	if trend == "upward" && avgTenure >= 18 {
		if next, ok := progression[currentLevel]; ok {
			return next
		}
		return currentLevel
	}

	return currentLevel
}

// TrajectoryFitScore computes the 0-100 trajectory-fit component.
func TrajectoryFitScore(trajectory tailor.CareerTrajectory, requiredLevel tailor.ExperienceLevel) float64 {
	score := 0.0

	currentScore := trajectory.CurrentLevel.Rank()
	requiredScore := requiredLevel.Rank()
	switch {
	case requiredScore == 0:
		score += 50
	case currentScore >= requiredScore:
		score += 50
	default:
		score += (float64(currentScore) / float64(requiredScore)) * 50
	}

	if trajectory.IsProgressing() {
		score += 20
	} else if trajectory.ProgressionTrend == "lateral" {
		score += 10
	}

	switch {
	case trajectory.PromotionsCount >= 2:
		score += 15
	case trajectory.PromotionsCount == 1:
		score += 10
	}

	switch {
	case trajectory.AvgTenureMonths >= 18 && trajectory.AvgTenureMonths <= 48:
		score += 15
	case trajectory.AvgTenureMonths >= 12 && trajectory.AvgTenureMonths < 18:
		score += 10
	}

	if score > 100 {
		return 100
	}
	return score
}
