package client

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/pyre/engine/particle"
	"github.com/memmaker/pyre/engine/util"
)

// SmokeConfig is the soft gray plume. The low fixed alpha keeps the additive
// accumulation from blowing out where many quads overlap.
func SmokeConfig() particle.Config {
	return particle.Config{
		SpawnInterval:      0.005,
		Lifetime:           1.0,
		SpawnRadius:        1.0,
		LateralDamping:     0.5,
		RotationSpeedScale: 2 * math.Pi,
		BaseSize:           mgl32.Vec2{3, 3},
		Acceleration:       mgl32.Vec3{0, 3, 0},
		Kind:               particle.KindSmoke,
		Color:              mgl32.Vec3{0.75, 0.75, 0.78},
		FixedAlpha:         0.01,
		AtlasLayer:         util.AtlasLayerSmoke,
	}
}

// FlareConfig shares the state machine with the smoke flavor, only the
// tuning differs: tighter spawn radius, stronger buoyancy, fade-driven alpha.
func FlareConfig() particle.Config {
	return particle.Config{
		SpawnInterval:      0.005,
		Lifetime:           1.0,
		SpawnRadius:        0.5,
		LateralDamping:     0.5,
		RotationSpeedScale: 2 * math.Pi,
		BaseSize:           mgl32.Vec2{2, 2},
		Acceleration:       mgl32.Vec3{0, 7.8, 0},
		Kind:               particle.KindFlare,
		Color:              mgl32.Vec3{1, 0.55, 0.2},
		FixedAlpha:         -1,
		AtlasLayer:         util.AtlasLayerFlare,
	}
}
