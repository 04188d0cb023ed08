package particle

// DoubleBuffer holds the two fixed-capacity particle arenas of the ping-pong
// pipeline. One arena is the simulation source, the other the write target,
// and the roles flip after every step. The reader never aliases the writer.
type DoubleBuffer struct {
	front, back   []Particle
	frontIsSource bool
}

func NewDoubleBuffer(capacity int) *DoubleBuffer {
	if capacity < 2 {
		capacity = 2
	}
	b := &DoubleBuffer{
		front: make([]Particle, 0, capacity),
		back:  make([]Particle, 0, capacity),
	}
	b.Reset()
	return b
}

// Reset discards all particles and reseeds the source arena with the single
// emitter particle.
func (b *DoubleBuffer) Reset() {
	b.front = b.front[:0]
	b.back = b.back[:0]
	b.front = append(b.front, Particle{Kind: KindEmitter})
	b.frontIsSource = true
}

// Source returns the arena holding the most recently produced frame.
func (b *DoubleBuffer) Source() []Particle {
	if b.frontIsSource {
		return b.front
	}
	return b.back
}

// target returns the write arena, emptied but with its capacity intact.
func (b *DoubleBuffer) target() []Particle {
	if b.frontIsSource {
		return b.back[:0]
	}
	return b.front[:0]
}

// commit stores the written arena and flips the buffer roles.
func (b *DoubleBuffer) commit(written []Particle) {
	if b.frontIsSource {
		b.back = written
	} else {
		b.front = written
	}
	b.frontIsSource = !b.frontIsSource
}

// Capacity returns the per-arena particle limit.
func (b *DoubleBuffer) Capacity() int {
	return cap(b.front)
}
