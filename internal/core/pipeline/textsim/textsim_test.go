package textsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/textsim"
)

func TestRatioIdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, textsim.Ratio("kubernetes", "kubernetes"))
}

func TestRatioEmptyStrings(t *testing.T) {
	assert.Equal(t, 1.0, textsim.Ratio("", ""))
}

func TestRatioCompletelyDifferentStrings(t *testing.T) {
	ratio := textsim.Ratio("kafka", "zzzzz")
	assert.Less(t, ratio, 0.5)
}

func TestRatioDecreasesWithEditDistance(t *testing.T) {
	closeRatio := textsim.Ratio("kubernetes", "kubernetess")
	farRatio := textsim.Ratio("kubernetes", "banana")

	assert.Greater(t, closeRatio, farRatio)
	assert.GreaterOrEqual(t, closeRatio, 0.0)
	assert.LessOrEqual(t, closeRatio, 1.0)
}
