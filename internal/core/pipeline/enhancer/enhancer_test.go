package enhancer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/enhancer"
)

type fakeBackend struct {
	available bool
	response  string
	err       error
}

func (f *fakeBackend) EnhanceBullet(ctx context.Context, bulletText, jobTitle string, keywords []string) (string, error) {
	return f.response, f.err
}

func (f *fakeBackend) GenerateSummary(ctx context.Context, bullets, skills []string, jobTitle string, keywords []string) (string, error) {
	return "", nil
}

func (f *fakeBackend) Available(ctx context.Context) bool { return f.available }

func TestEnhanceBulletAcceptsConfidentRewrite(t *testing.T) {
	backend := &fakeBackend{
		available: true,
		response:  `"- Managed a Kafka platform serving 2B events/day with 99.99% uptime."`,
	}
	e := enhancer.New(backend)

	original := tailor.Bullet{Text: "Managed a messaging platform serving many events per day with high uptime."}

	selected, ok := e.EnhanceBullet(context.Background(), original, "Platform Engineer", []string{"kafka"})

	require.True(t, ok)
	assert.True(t, selected.WasEnhanced)
	assert.Contains(t, selected.EnhancedVersion, "Kafka")
	assert.NotContains(t, selected.EnhancedVersion, "\"")
	assert.Contains(t, selected.KeywordsAdded, "kafka")
}

func TestEnhanceBulletRejectsWhenBackendUnavailable(t *testing.T) {
	backend := &fakeBackend{available: false}
	e := enhancer.New(backend)

	_, ok := e.EnhanceBullet(context.Background(), tailor.Bullet{Text: "Did some work."}, "Engineer", nil)
	assert.False(t, ok)
}

func TestEnhanceBulletRejectsEmptyResponse(t *testing.T) {
	backend := &fakeBackend{available: true, response: ""}
	e := enhancer.New(backend)

	_, ok := e.EnhanceBullet(context.Background(), tailor.Bullet{Text: "Did some work."}, "Engineer", nil)
	assert.False(t, ok)
}

func TestEnhanceBulletRejectsDrasticRewrite(t *testing.T) {
	backend := &fakeBackend{
		available: true,
		response:  "Rewrote everything into something completely unrelated and much much much much much much longer than before in every conceivable way imaginable today.",
	}
	e := enhancer.New(backend)

	original := tailor.Bullet{Text: "Wrote code."}

	_, ok := e.EnhanceBullet(context.Background(), original, "Engineer", nil)
	assert.False(t, ok, "a rewrite far longer than the original should fail the confidence check")
}

func TestEnhanceBatchStopsAtMaxEnhancements(t *testing.T) {
	backend := &fakeBackend{
		available: true,
		response:  "Delivered measurable impact with Kafka across 3 teams, increasing throughput by 25%.",
	}
	e := enhancer.New(backend)

	sections := []tailor.ExperienceSection{
		{
			SelectedBullets: []tailor.SelectedBullet{
				{Bullet: tailor.Bullet{Text: "Worked on backend systems."}},
				{Bullet: tailor.Bullet{Text: "Worked on frontend systems."}},
				{Bullet: tailor.Bullet{Text: "Worked on infra systems."}},
			},
		},
	}

	stats := e.EnhanceBatch(context.Background(), sections, "Platform Engineer", []string{"kafka"}, 2)

	assert.LessOrEqual(t, stats.BulletsEnhanced, 2)
}
