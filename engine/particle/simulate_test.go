package particle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		SpawnInterval:      0.005,
		Lifetime:           1.0,
		SpawnRadius:        1.0,
		LateralDamping:     0.5,
		RotationSpeedScale: 2 * 3.14159265,
		BaseSize:           mgl32.Vec2{3, 3},
		Acceleration:       mgl32.Vec3{0, 3, 0},
		Kind:               KindSmoke,
		Color:              mgl32.Vec3{1, 1, 1},
		FixedAlpha:         0.01,
	}
}

func frameAt(gameTime, timeStep float32) FrameInput {
	return FrameInput{
		EmitPosition: mgl32.Vec3{0, 0, 0},
		EyePosition:  mgl32.Vec3{0, 0, 5},
		GameTime:     gameTime,
		TimeStep:     timeStep,
	}
}

func countEmitters(particles []Particle) int {
	count := 0
	for _, p := range particles {
		if p.Kind == KindEmitter {
			count++
		}
	}
	return count
}

func TestSeedStateIsSingleEmitter(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))

	require.Len(t, sys.Particles(), 1)
	assert.Equal(t, KindEmitter, sys.Particles()[0].Kind)
	assert.Equal(t, float32(0), sys.Particles()[0].Age)
}

func TestEmitterIsPresentExactlyOnceEveryFrame(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))

	gameTime := float32(0)
	steps := []float32{0.016, 0.0, 0.005, 0.1, 0.016, 0.33, 0.016}
	for tick := 0; tick < 500; tick++ {
		dt := steps[tick%len(steps)]
		gameTime += dt
		sys.Step(frameAt(gameTime, dt))
		require.Equal(t, 1, countEmitters(sys.Particles()), "tick %d", tick)
	}
}

func TestZeroTimeStepReproducesInput(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))

	gameTime := float32(0)
	for tick := 0; tick < 25; tick++ {
		gameTime += 0.016
		sys.Step(frameAt(gameTime, 0.016))
	}

	before := append([]Particle(nil), sys.Particles()...)
	sys.Step(frameAt(gameTime, 0))
	assert.Equal(t, before, sys.Particles())
}

func TestSpawnedChildPrecedesEmitterInOutput(t *testing.T) {
	cfg := testConfig()
	sys := NewSystem(cfg, NewDirectionTable(1))

	sys.Step(frameAt(0.01, 0.01))

	out := sys.Particles()
	require.Len(t, out, 2)
	assert.Equal(t, cfg.Kind, out[0].Kind)
	assert.Equal(t, KindEmitter, out[1].Kind)
	assert.Equal(t, float32(0), out[0].Age, "child spawns with age zero")
	assert.Equal(t, float32(0), out[1].Age, "emitter age resets after spawning")
}

func TestSpawnParametersFollowNoiseAndConfig(t *testing.T) {
	cfg := testConfig()
	noise := NewDirectionTable(7)
	sys := NewSystem(cfg, noise)

	gameTime := float32(0.25)
	sys.Step(frameAt(gameTime, 0.01))

	child := sys.Particles()[0]
	require.Equal(t, cfg.Kind, child.Kind)

	dir := noise.UnitVector(gameTime)
	dir[0] *= cfg.LateralDamping
	dir[2] *= cfg.LateralDamping
	vel := noise.UnitVector(gameTime + 0.01)

	assert.InDelta(t, dir.X()*cfg.SpawnRadius, child.InitialPos.X(), 1e-6)
	assert.InDelta(t, dir.Y()*cfg.SpawnRadius, child.InitialPos.Y(), 1e-6)
	assert.InDelta(t, dir.Z()*cfg.SpawnRadius, child.InitialPos.Z(), 1e-6)
	assert.Equal(t, vel, child.InitialVel)
	assert.Equal(t, cfg.BaseSize, child.Size)
	assert.InDelta(t, cfg.RotationSpeedScale*dir.X(), child.RotationSpeed, 1e-6)
}

// Runs the scenario from the fire preset: spawn interval 0.005s stepped at
// 0.01s means one spawn per tick, and after the lifetime window has filled
// the population settles at exactly the spawns of the trailing second.
func TestPopulationSettlesAtLifetimeWindow(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))

	gameTime := float32(0)
	for tick := 1; tick <= 100; tick++ {
		gameTime += 0.01
		sys.Step(frameAt(gameTime, 0.01))
	}

	// no particle has outlived 1.0s yet: 100 spawns, all alive
	assert.Equal(t, 100, sys.Alive())
	for _, p := range sys.Particles() {
		assert.LessOrEqual(t, p.Age, float32(1.0))
	}

	for tick := 101; tick <= 300; tick++ {
		gameTime += 0.01
		sys.Step(frameAt(gameTime, 0.01))
	}

	// steady state: one spawn and one expiry per tick, ages spanning the
	// trailing lifetime window
	assert.Equal(t, 101, sys.Alive())
	assert.Equal(t, uint64(0), sys.DroppedSpawns())
}

func TestAgeTracksElapsedTimeSinceSpawn(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))

	gameTime := float32(0.01)
	sys.Step(frameAt(gameTime, 0.01))
	require.Equal(t, 1, sys.Alive())

	for tick := 0; tick < 42; tick++ {
		gameTime += 0.01
		sys.Step(frameAt(gameTime, 0.01))
	}

	oldest := sys.Particles()[0]
	assert.NotEqual(t, KindEmitter, oldest.Kind)
	assert.InDelta(t, 0.42, float64(oldest.Age), 1e-4)
}

func TestFullArenaDropsSpawnsButNeverTheEmitter(t *testing.T) {
	cfg := testConfig()
	cfg.MaxParticles = 4
	sys := NewSystem(cfg, NewDirectionTable(1))

	gameTime := float32(0)
	for tick := 0; tick < 50; tick++ {
		gameTime += 0.01
		sys.Step(frameAt(gameTime, 0.01))
		require.LessOrEqual(t, len(sys.Particles()), 4)
		require.Equal(t, 1, countEmitters(sys.Particles()))
	}
	assert.NotZero(t, sys.DroppedSpawns())
}

func TestStepWritesIntoTheAlternateArena(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))

	sys.Step(frameAt(0.01, 0.01))
	first := sys.Particles()
	sys.Step(frameAt(0.02, 0.01))
	second := sys.Particles()

	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotSame(t, &first[0], &second[0], "simulation must never write the arena it reads")
}

func TestResetRestoresSeedState(t *testing.T) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))
	for tick := 1; tick <= 20; tick++ {
		sys.Step(frameAt(float32(tick)*0.01, 0.01))
	}
	require.NotZero(t, sys.Alive())

	sys.Reset()
	require.Len(t, sys.Particles(), 1)
	assert.Equal(t, KindEmitter, sys.Particles()[0].Kind)
	assert.Zero(t, sys.DroppedSpawns())
}

// execute with: go test -bench=. -test.benchmem
func BenchmarkStep(b *testing.B) {
	sys := NewSystem(testConfig(), NewDirectionTable(1))
	gameTime := float32(0)
	for i := 0; i < b.N; i++ {
		gameTime += 0.016
		sys.Step(frameAt(gameTime, 0.016))
	}
}
