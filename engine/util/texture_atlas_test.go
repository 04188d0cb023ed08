package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedLayersHaveFullPixelCoverage(t *testing.T) {
	size := 32
	flare := GenerateFlareLayer(size)
	smoke := GenerateSmokeLayer(size)
	require.Len(t, flare, size*size*4)
	require.Len(t, smoke, size*size*4)
}

func TestRadialLayersFadeTowardsTheRim(t *testing.T) {
	size := 64
	for _, layer := range [][]uint8{GenerateFlareLayer(size), GenerateSmokeLayer(size)} {
		centerAlpha := layer[((size/2)*size+(size/2))*4+3]
		cornerAlpha := layer[3]
		assert.Greater(t, centerAlpha, cornerAlpha)
		assert.Zero(t, cornerAlpha, "corners are fully transparent")
	}
}

func TestSmoothstepEdges(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0, 1, -1))
	assert.Equal(t, 0.0, Smoothstep(0, 1, 0))
	assert.Equal(t, 0.5, Smoothstep(0, 1, 0.5))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 1))
	assert.Equal(t, 1.0, Smoothstep(0, 1, 5))
}
