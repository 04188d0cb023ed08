package particle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Kind uint8

const (
	KindEmitter Kind = iota
	KindFlare
	KindSmoke
)

// Particle is one fixed-layout element of the simulation buffers. Only Age
// changes after spawn; position, opacity and rotation are derived on demand
// from the spawn snapshot (see kinematics.go), never stored.
type Particle struct {
	InitialPos    mgl32.Vec3
	InitialVel    mgl32.Vec3
	Size          mgl32.Vec2
	Age           float32
	RotationSpeed float32
	Kind          Kind
}

// Config selects the effect flavor and its tuning constants. The same state
// machine drives both fire and smoke, only the constants differ.
type Config struct {
	// MaxParticles bounds both arenas. Zero means "derive from spawn rate
	// and lifetime", which is the steady-state worst case plus some slack.
	MaxParticles int

	SpawnInterval float32
	Lifetime      float32
	SpawnRadius   float32
	// LateralDamping scales the x/z components of the spawn offset vector,
	// narrowing the horizontal spread of the plume.
	LateralDamping     float32
	RotationSpeedScale float32
	BaseSize           mgl32.Vec2
	Acceleration       mgl32.Vec3

	// Kind is the flavor assigned to spawned particles, KindFlare or KindSmoke.
	Kind  Kind
	Color mgl32.Vec3
	// FixedAlpha overrides the age-based fade in the vertex alpha when >= 0.
	// Smoke uses a low constant so the additive accumulation stays soft.
	FixedAlpha float32
	AtlasLayer int

	DebugMode bool
}

// FrameInput is the read-only snapshot of per-frame parameters shared by the
// simulate and draw stages. EmitDirection is reserved for directional
// emission and not used by the spawn math yet.
type FrameInput struct {
	EyePosition    mgl32.Vec3
	EmitPosition   mgl32.Vec3
	EmitDirection  mgl32.Vec3
	GameTime       float32
	TimeStep       float32
	ViewProjection mgl32.Mat4
}

func (c Config) withDefaults() Config {
	if c.Lifetime <= 0 {
		c.Lifetime = 1.0
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = 0.005
	}
	if c.MaxParticles <= 0 {
		// one spawn per interval, alive for one lifetime, plus the emitter
		// and headroom for frame jitter
		c.MaxParticles = int(math.Ceil(float64(c.Lifetime/c.SpawnInterval))) + 8
	}
	return c
}
