package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/selector"
)

func experienceWithBullets(title string, bullets ...string) tailor.Experience {
	exp := tailor.Experience{Title: title, Company: title + " Inc"}
	for i, text := range bullets {
		exp.Bullets = append(exp.Bullets, tailor.Bullet{
			ID:   tailor.BulletID(title, i),
			Text: text,
		})
	}
	return exp
}

func TestSelectPrefersHighScoringBullets(t *testing.T) {
	resume := &tailor.Resume{
		Experience: []tailor.Experience{
			experienceWithBullets("Platform Engineer",
				"Architected a Kafka-based streaming pipeline that increased throughput by 40%.",
				"Attended weekly team meetings.",
			),
		},
	}
	resume.BuildIndex()

	sections := selector.Select(resume, "kafka streaming pipeline", []string{"kafka", "streaming", "pipeline"}, selector.Config{
		TargetBullets:    1,
		MinBulletsPerJob: 0,
		MaxBulletsPerJob: 4,
	})

	require.Len(t, sections, 1)
	require.Len(t, sections[0].SelectedBullets, 1)
	assert.Contains(t, sections[0].SelectedBullets[0].Bullet.Text, "Architected a Kafka-based")
}

func TestSelectGuaranteesMinimumBulletsPerJob(t *testing.T) {
	resume := &tailor.Resume{
		Experience: []tailor.Experience{
			experienceWithBullets("Backend Engineer", "Wrote internal documentation."),
			experienceWithBullets("Support Engineer", "Handled customer escalations."),
		},
	}
	resume.BuildIndex()

	sections := selector.Select(resume, "kafka", []string{"kafka"}, selector.Config{
		TargetBullets:    1,
		MinBulletsPerJob: 1,
		MaxBulletsPerJob: 4,
	})

	require.Len(t, sections, 2)
	for _, s := range sections {
		assert.GreaterOrEqual(t, len(s.SelectedBullets), 1, "every experience should retain at least MinBulletsPerJob bullets")
	}
}

func TestSelectRespectsMaxBulletsPerJob(t *testing.T) {
	resume := &tailor.Resume{
		Experience: []tailor.Experience{
			experienceWithBullets("Engineer",
				"Built feature A with Kafka.",
				"Built feature B with Kafka.",
				"Built feature C with Kafka.",
				"Built feature D with Kafka.",
				"Built feature E with Kafka.",
			),
		},
	}
	resume.BuildIndex()

	sections := selector.Select(resume, "kafka", []string{"kafka"}, selector.Config{
		TargetBullets:    10,
		MinBulletsPerJob: 1,
		MaxBulletsPerJob: 2,
	})

	require.Len(t, sections, 1)
	assert.LessOrEqual(t, len(sections[0].SelectedBullets), 2)
}

func TestReorderByRelevanceSortsDescending(t *testing.T) {
	sections := []tailor.ExperienceSection{
		{
			SelectedBullets: []tailor.SelectedBullet{
				{Bullet: tailor.Bullet{Text: "low"}, RelevanceScore: 0.2},
				{Bullet: tailor.Bullet{Text: "high"}, RelevanceScore: 0.9},
				{Bullet: tailor.Bullet{Text: "mid"}, RelevanceScore: 0.5},
			},
		},
	}

	reordered := selector.ReorderByRelevance(sections)

	require.Len(t, reordered[0].SelectedBullets, 3)
	assert.Equal(t, "high", reordered[0].SelectedBullets[0].Bullet.Text)
	assert.Equal(t, "mid", reordered[0].SelectedBullets[1].Bullet.Text)
	assert.Equal(t, "low", reordered[0].SelectedBullets[2].Bullet.Text)
}
