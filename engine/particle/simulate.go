package particle

// The two noise offsets used per spawn. They only need to be far enough
// apart that the direction table returns decorrelated vectors.
const (
	spawnOffsetPosition = 0.0
	spawnOffsetVelocity = 0.01
)

// System runs the simulation stage: it consumes the previous frame's arena
// and produces the next one. Each particle's transition depends only on its
// own prior state and the frame snapshot, so the loop mirrors the
// data-parallel stream-out pass of a GPU implementation, including the full
// barrier between simulating and drawing.
type System struct {
	cfg     Config
	noise   *DirectionTable
	buffers *DoubleBuffer

	droppedSpawns uint64
}

func NewSystem(cfg Config, noise *DirectionTable) *System {
	cfg = cfg.withDefaults()
	return &System{
		cfg:     cfg,
		noise:   noise,
		buffers: NewDoubleBuffer(cfg.MaxParticles),
	}
}

// Step advances the simulation by one frame. Aging happens unconditionally;
// the emitter spawns at most one child per step and is never dropped; all
// other particles survive only while their age stays within the lifetime.
// A zero TimeStep reproduces the input frame unchanged.
func (s *System) Step(frame FrameInput) {
	src := s.buffers.Source()
	out := s.buffers.target()

	for i := range src {
		p := src[i]
		p.Age += frame.TimeStep

		if p.Kind != KindEmitter {
			if p.Age <= s.cfg.Lifetime {
				out = append(out, p)
			}
			continue
		}

		if p.Age > s.cfg.SpawnInterval {
			// every remaining source particle could survive, so a spawn is
			// only allowed if the arena fits all of them plus the child
			if len(out)+(len(src)-i) < cap(out) {
				out = append(out, s.spawn(frame))
			} else {
				s.droppedSpawns++
			}
			p.Age = 0
		}
		out = append(out, p)
	}

	s.buffers.commit(out)
}

func (s *System) spawn(frame FrameInput) Particle {
	dir := s.noise.UnitVector(frame.GameTime + spawnOffsetPosition)
	dir[0] *= s.cfg.LateralDamping
	dir[2] *= s.cfg.LateralDamping
	vel := s.noise.UnitVector(frame.GameTime + spawnOffsetVelocity)

	return Particle{
		InitialPos:    frame.EmitPosition.Add(dir.Mul(s.cfg.SpawnRadius)),
		InitialVel:    vel,
		Size:          s.cfg.BaseSize,
		RotationSpeed: s.cfg.RotationSpeedScale * dir.X(),
		Kind:          s.cfg.Kind,
	}
}

// Reset restores the single-emitter seed state.
func (s *System) Reset() {
	s.buffers.Reset()
	s.droppedSpawns = 0
}

// Particles returns the arena produced by the latest Step. The slice is only
// valid until the next Step.
func (s *System) Particles() []Particle {
	return s.buffers.Source()
}

// Alive returns the number of renderable (non-emitter) particles.
func (s *System) Alive() int {
	count := 0
	for _, p := range s.buffers.Source() {
		if p.Kind != KindEmitter {
			count++
		}
	}
	return count
}

// DroppedSpawns reports how many emissions were skipped because the arena
// was full. A non-zero value after steady state means MaxParticles is
// configured below spawn rate times lifetime.
func (s *System) DroppedSpawns() uint64 {
	return s.droppedSpawns
}

func (s *System) Config() Config {
	return s.cfg
}
