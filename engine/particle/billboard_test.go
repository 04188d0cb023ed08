package particle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, float64(expected.X()), float64(actual.X()), delta)
	assert.InDelta(t, float64(expected.Y()), float64(actual.Y()), delta)
	assert.InDelta(t, float64(expected.Z()), float64(actual.Z()), delta)
}

// Camera on the +z axis looking straight at the particle: a size (2,2) quad
// with no rotation must come out as an axis-aligned square of side 2 in
// strip order (top-left, top-right, bottom-left, bottom-right).
func TestUnrotatedQuadFacingCamera(t *testing.T) {
	quad := QuadCorners(mgl32.Vec3{}, mgl32.Vec2{2, 2}, 0, mgl32.Vec3{0, 0, 5})

	expected := [4]mgl32.Vec3{
		{-1, 1, 0},
		{1, 1, 0},
		{-1, -1, 0},
		{1, -1, 0},
	}
	for i := range quad {
		assertVec3InDelta(t, expected[i], quad[i].Pos, 1e-5)
	}

	assert.Equal(t, mgl32.Vec2{0, 1}, quad[0].UV)
	assert.Equal(t, mgl32.Vec2{1, 1}, quad[1].UV)
	assert.Equal(t, mgl32.Vec2{0, 0}, quad[2].UV)
	assert.Equal(t, mgl32.Vec2{1, 0}, quad[3].UV)
}

func TestQuadIsCenteredOnTheParticle(t *testing.T) {
	center := mgl32.Vec3{3, -7, 2.5}
	quad := QuadCorners(center, mgl32.Vec2{3, 3}, 1.234, mgl32.Vec3{10, 4, -3})

	var sum mgl32.Vec3
	for i := range quad {
		sum = sum.Add(quad[i].Pos)
	}
	assertVec3InDelta(t, center, sum.Mul(0.25), 1e-4)
}

func TestInPlaneRotationByQuarterTurn(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	base := QuadCorners(mgl32.Vec3{}, mgl32.Vec2{2, 2}, 0, eye)
	turned := QuadCorners(mgl32.Vec3{}, mgl32.Vec2{2, 2}, math.Pi/2, eye)

	// rotating 90° maps the top-right corner onto the old top-left
	assertVec3InDelta(t, base[0].Pos, turned[1].Pos, 1e-5)
}

func TestDegenerateLookDirectionUsesFallbackAxis(t *testing.T) {
	// eye straight above the particle, look parallel to world up
	quad := QuadCorners(mgl32.Vec3{}, mgl32.Vec2{2, 2}, 0, mgl32.Vec3{0, 25, 0})

	for i := range quad {
		for axis := 0; axis < 3; axis++ {
			require.False(t, math.IsNaN(float64(quad[i].Pos[axis])), "corner %d axis %d is NaN", i, axis)
		}
	}
	side := quad[0].Pos.Sub(quad[1].Pos).Len()
	assert.InDelta(t, 2.0, float64(side), 1e-4)
}

func TestCollectQuadsSkipsTheEmitter(t *testing.T) {
	cfg := testConfig()
	particles := []Particle{
		{Kind: KindEmitter},
		{Kind: KindSmoke, Size: cfg.BaseSize, Age: 0.5},
		{Kind: KindSmoke, Size: cfg.BaseSize, Age: 0.1},
	}

	verts := CollectQuads(particles, frameAt(1, 0.016), cfg, nil)
	assert.Len(t, verts, 12, "six vertices per renderable particle")
}

func TestCollectQuadsAppliesFadeAndAlphaOverride(t *testing.T) {
	cfg := testConfig() // smoke flavor, fixed alpha 0.01
	particles := []Particle{{Kind: KindSmoke, Size: cfg.BaseSize, Age: 0.5}}

	verts := CollectQuads(particles, frameAt(1, 0.016), cfg, nil)
	require.Len(t, verts, 6)

	fade := FadeAt(0.5, cfg.Lifetime)
	for _, v := range verts {
		assert.InDelta(t, float64(fade), float64(v.Color.X()), 1e-6)
		assert.InDelta(t, 0.01, float64(v.Color.W()), 1e-6, "smoke alpha is the fixed constant")
	}

	flare := cfg
	flare.Kind = KindFlare
	flare.FixedAlpha = -1
	verts = CollectQuads(particles, frameAt(1, 0.016), flare, verts[:0])
	assert.InDelta(t, float64(fade), float64(verts[0].Color.W()), 1e-6, "flare alpha follows the fade")
}

func TestFlattenLayout(t *testing.T) {
	verts := []Vertex{{
		Pos:   mgl32.Vec3{1, 2, 3},
		UV:    mgl32.Vec2{4, 5},
		Color: mgl32.Vec4{6, 7, 8, 9},
	}}
	flat := Flatten(verts, nil)
	require.Len(t, flat, FloatsPerVertex)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, flat)
}
