package particle

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const directionTableSize = 1024

// DirectionTable is a cyclic lookup table of pre-generated random vectors
// with components in [-1,1]. It plays the role of the 1D noise texture a GPU
// implementation would sample: read-only after construction, wrap addressing,
// never reseeded between frames.
type DirectionTable struct {
	vectors []mgl32.Vec3
}

func NewDirectionTable(seed int64) *DirectionTable {
	rng := rand.New(rand.NewSource(seed))
	vectors := make([]mgl32.Vec3, directionTableSize)
	for i := range vectors {
		v := mgl32.Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
		}
		if v.Len() < 1e-3 {
			// an entry this short would make UnitVector divide by ~zero
			v = mgl32.Vec3{0, 1, 0}
		}
		vectors[i] = v
	}
	return &DirectionTable{vectors: vectors}
}

// UnitVector samples the table at t wrapped into [0,1) and normalizes the
// result. The table is dense enough that callers sampling at t and t+0.01
// land on different entries.
func (d *DirectionTable) UnitVector(t float32) mgl32.Vec3 {
	u := float64(t)
	u -= math.Floor(u)
	index := int(u * float64(len(d.vectors)))
	if index >= len(d.vectors) {
		index = len(d.vectors) - 1
	}
	return d.vectors[index].Normalize()
}

// Len returns the number of table entries.
func (d *DirectionTable) Len() int {
	return len(d.vectors)
}
