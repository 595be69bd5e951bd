package tailor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

func TestBulletIDSlugifiesOwner(t *testing.T) {
	assert.Equal(t, "acme_corp_0", tailor.BulletID("Acme Corp", 0))
	assert.Equal(t, "acme_corp_3", tailor.BulletID("  Acme Corp  ", 3))
}

func TestBulletIDFallsBackToSectionForEmptyOwner(t *testing.T) {
	assert.Equal(t, "section_0", tailor.BulletID("", 0))
	assert.Equal(t, "section_0", tailor.BulletID("   ", 0))
}

func TestResumeBuildIndexCollectsExperienceAndProjectBullets(t *testing.T) {
	resume := &tailor.Resume{
		Experience: []tailor.Experience{
			{Bullets: []tailor.Bullet{{Text: "exp bullet one"}, {Text: "exp bullet two"}}},
		},
		Projects: []tailor.Project{
			{Bullets: []tailor.Bullet{{Text: "project bullet"}}},
		},
	}

	resume.BuildIndex()

	assert.Len(t, resume.AllBullets, 3)
}

func TestResumeBuildIndexOnEmptyResumeYieldsEmptySlice(t *testing.T) {
	resume := &tailor.Resume{}
	resume.BuildIndex()

	assert.Empty(t, resume.AllBullets)
}
