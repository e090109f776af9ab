package memetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

func TestPenaltyMatrix_Update(t *testing.T) {
	g, err := instance.Cycle(4, 2)
	require.NoError(t, err)
	pm := memetic.NewPenaltyMatrix(4, 30, 0.4)

	// (0,1) and (1,2) violated, (2,3) and (3,0) fine.
	c := memetic.Coloring{1, 2, 3, 5}
	assert.False(t, pm.Update(g, c))
	assert.Equal(t, 1, pm.At(0, 1))
	assert.Equal(t, 1, pm.At(1, 0))
	assert.Equal(t, 1, pm.At(1, 2))
	assert.Equal(t, 0, pm.At(2, 3))
	assert.Equal(t, 0, pm.At(0, 2), "non-edges never grow")
	assert.Equal(t, 1, pm.Max())
}

func TestPenaltyMatrix_Rescale(t *testing.T) {
	g, err := instance.Complete(4, 3)
	require.NoError(t, err)
	pm := memetic.NewPenaltyMatrix(4, 5, 0.4)

	// Edge (0,1) violated on every round, (2,3) only on odd rounds.
	hot := memetic.Coloring{1, 1, 4, 7}
	both := memetic.Coloring{1, 1, 5, 5}
	var rescaled bool
	for i := 0; i < 6 && !rescaled; i++ {
		c := hot
		if i%2 == 1 {
			c = both
		}
		rescaled = pm.Update(g, c)
	}
	require.True(t, rescaled, "max entry 6 exceeds ceiling 5")

	// Before the rescale (0,1)=6 and (2,3)=3; floor(0.4·x) gives 2 and 1.
	assert.Equal(t, 2, pm.At(0, 1))
	assert.Equal(t, 1, pm.At(2, 3))
	assert.Equal(t, 0, pm.At(1, 2))
	assert.Equal(t, 2, pm.Max())
}

func TestPenaltyMatrix_RescaleMonotone(t *testing.T) {
	g := randomGraph(t, 11, 15, 0.5, 4)
	pm := memetic.NewPenaltyMatrix(g.NumNodes(), 1<<30, 0.4)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 40; i++ {
		pm.Update(g, randomColoring(rng, g.NumNodes(), 4))
	}

	n := g.NumNodes()
	before := make([]int, 0, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			before = append(before, pm.At(u, v))
		}
	}
	pm.Rescale()

	after := make([]int, 0, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			require.Equal(t, pm.At(u, v), pm.At(v, u), "symmetric")
			after = append(after, pm.At(u, v))
		}
	}
	for i := range before {
		assert.GreaterOrEqual(t, after[i], 0)
		assert.LessOrEqual(t, after[i], before[i])
		for j := range before {
			if before[i] <= before[j] {
				assert.LessOrEqual(t, after[i], after[j])
			}
		}
	}
}
