package fit

import (
	"fmt"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

const (
	weightSkill      = 0.35
	weightExperience = 0.30
	weightTrajectory = 0.15
	weightCulture    = 0.10
	weightEducation  = 0.10
)

// Score runs all five sub-collaborators and aggregates them into a single
// holistic job-fit assessment.
func Score(resume *tailor.Resume, req tailor.JobRequirements, currentYear int) tailor.JobFitScore {
	skillMatches, skillGaps := MatchSkills(resume, req)
	skillFit := FitScore(skillMatches, skillGaps)

	experienceMatches := EvaluateExperience(resume, req, currentYear)
	experienceFit := ExperienceFitScore(experienceMatches, req.MinYearsExperience)

	trajectory := AnalyzeTrajectory(resume, currentYear)
	trajectoryFit := TrajectoryFitScore(trajectory, req.ExperienceLevel)

	cultureIndicators := AnalyzeCultureFit(resume, req)
	cultureFit := cultureIndicators.FitScore() * 100

	educationFit := calculateEducationFit(resume, req)

	overall := skillFit*weightSkill +
		experienceFit*weightExperience +
		trajectoryFit*weightTrajectory +
		cultureFit*weightCulture +
		educationFit*weightEducation

	enrichedGaps, developmentAreas := AnalyzeGaps(skillGaps)

	var criticalGaps []string
	for _, g := range enrichedGaps {
		if g.GapSeverity == "critical" {
			criticalGaps = append(criticalGaps, fmt.Sprintf("%s (%s)", g.SkillName, g.RequiredLevel))
		}
	}

	candidateName := resume.Personal.Name
	if candidateName == "" {
		candidateName = "Unknown"
	}

	return tailor.JobFitScore{
		Overall:           overall,
		FitLevel:          tailor.DetermineFitLevel(overall),
		SkillFit:          skillFit,
		ExperienceFit:     experienceFit,
		CultureFit:        cultureFit,
		TrajectoryFit:     trajectoryFit,
		EducationFit:      educationFit,
		SkillMatches:      skillMatches,
		SkillGaps:         enrichedGaps,
		ExperienceMatches: experienceMatches,
		CultureIndicators: cultureIndicators,
		CareerTrajectory:  trajectory,
		CriticalGaps:      criticalGaps,
		DevelopmentAreas:  developmentAreas,
		Strengths:         identifyStrengths(skillMatches, experienceMatches, trajectory),
		JobTitle:          req.JobTitle,
		CandidateName:     candidateName,
	}
}

func calculateEducationFit(resume *tailor.Resume, req tailor.JobRequirements) float64 {
	if len(resume.Education) == 0 {
		return 50.0
	}

	score := 50.0

	if req.EducationRequired != "" {
		requiredLower := strings.ToLower(req.EducationRequired)
		for _, edu := range resume.Education {
			degreeLower := strings.ToLower(edu.Degree)
			if strings.Contains(requiredLower, degreeLower) || strings.Contains(degreeLower, requiredLower) {
				score += 30.0
				break
			}
		}
	} else {
		score += 20.0
	}

	certMatch := false
	for _, requiredCert := range req.CertificationsRequired {
		for _, cert := range resume.Certifications {
			if strings.Contains(strings.ToLower(cert), strings.ToLower(requiredCert)) {
				certMatch = true
				break
			}
		}
	}

	switch {
	case certMatch:
		score += 20.0
	case len(resume.Certifications) > 0:
		score += 10.0
	}

	if score > 100 {
		return 100
	}
	return score
}

func identifyStrengths(skillMatches []tailor.SkillMatch, experienceMatches []tailor.ExperienceMatch, trajectory tailor.CareerTrajectory) []string {
	var strengths []string

	var strongSkills []string
	for _, m := range skillMatches {
		if m.MatchStrength >= 0.9 && (m.CandidateLevel == tailor.SkillAdvanced || m.CandidateLevel == tailor.SkillExpert) {
			strongSkills = append(strongSkills, m.SkillName)
		}
	}
	if len(strongSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Expert skills: %s", strings.Join(take1(strongSkills, 3), ", ")))
	}

	relevantCount := 0
	for _, m := range experienceMatches {
		if m.RelevanceScore >= 0.8 {
			relevantCount++
		}
	}
	if relevantCount > 0 {
		strengths = append(strengths, fmt.Sprintf("Highly relevant experience in %d roles", relevantCount))
	}

	if trajectory.IsProgressing() {
		strengths = append(strengths, "Strong upward career trajectory")
	}

	if trajectory.PromotionsCount > 0 {
		strengths = append(strengths, fmt.Sprintf("%d internal promotion(s)", trajectory.PromotionsCount))
	}

	if len(trajectory.Specialization) > 0 {
		strengths = append(strengths, fmt.Sprintf("Specialized in: %s", strings.Join(take1(trajectory.Specialization, 2), ", ")))
	}

	return strengths
}

func take1(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
