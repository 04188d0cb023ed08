package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitVectorIsUnitLength(t *testing.T) {
	table := NewDirectionTable(1)
	for i := 0; i < 200; i++ {
		v := table.UnitVector(float32(i) * 0.0137)
		assert.InDelta(t, 1.0, float64(v.Len()), 1e-5)
	}
}

func TestTableIsCyclic(t *testing.T) {
	table := NewDirectionTable(1)
	assert.Equal(t, table.UnitVector(0.25), table.UnitVector(1.25))
	assert.Equal(t, table.UnitVector(0.25), table.UnitVector(-0.75), "negative inputs wrap too")
}

func TestSmallOffsetsDecorrelate(t *testing.T) {
	table := NewDirectionTable(1)
	a := table.UnitVector(0.0)
	b := table.UnitVector(0.01)
	require.NotEqual(t, a, b, "offset 0.01 must land on a different entry")
	assert.Less(t, float64(a.Dot(b)), 0.999)
}

func TestSameSeedSameTable(t *testing.T) {
	one := NewDirectionTable(42)
	two := NewDirectionTable(42)
	for i := 0; i < 50; i++ {
		u := float32(i) * 0.02
		assert.Equal(t, one.UnitVector(u), two.UnitVector(u))
	}
}
