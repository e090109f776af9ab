package memetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

func TestEdgeViolation(t *testing.T) {
	cases := []struct {
		w, a, b, want int
	}{
		{w: 2, a: 1, b: 3, want: 0},
		{w: 2, a: 1, b: 2, want: 1},
		{w: 2, a: 3, b: 3, want: 2},
		{w: 3, a: 5, b: 4, want: 2},
		{w: 1, a: 1, b: 4, want: 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, memetic.EdgeViolation(tc.w, tc.a, tc.b), "w=%d a=%d b=%d", tc.w, tc.a, tc.b)
	}
}

func TestViolations_Cycle(t *testing.T) {
	g, err := instance.Cycle(5, 2)
	require.NoError(t, err)

	// 1,3,5,2,4 keeps every neighbor at distance ≥ 2 (4 ↔ 1 wraps around).
	assert.Equal(t, 0, memetic.Violations(g, memetic.Coloring{1, 3, 5, 2, 4}))
	// All equal: every edge misses by 2.
	assert.Equal(t, 10, memetic.Violations(g, memetic.Coloring{1, 1, 1, 1, 1}))
	// Only edge (0,1) is short by one.
	assert.Equal(t, 1, memetic.Violations(g, memetic.Coloring{1, 2, 4, 1, 3}))
}

func TestViolations_ZeroIffFeasible(t *testing.T) {
	g := randomGraph(t, 7, 12, 0.4, 3)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c := randomColoring(rng, g.NumNodes(), 6)

		feasible := true
		for _, e := range g.Edges() {
			d := c[e.U] - c[e.V]
			if d < 0 {
				d = -d
			}
			if d < e.Weight {
				feasible = false
			}
		}
		assert.Equal(t, feasible, memetic.Violations(g, c) == 0)
	}
}

func TestAugmentedViolations(t *testing.T) {
	g := instance.MustGraph([][]int{
		{0, 2, 0},
		{2, 0, 1},
		{0, 1, 0},
	})
	c := memetic.Coloring{1, 2, 3}
	pm := memetic.NewPenaltyMatrix(3, 30, 0.4)

	assert.Equal(t, 1, memetic.AugmentedViolations(g, nil, c))
	assert.Equal(t, 1, memetic.AugmentedViolations(g, pm, c))

	pm.Update(g, c)
	pm.Update(g, c)
	// Edge (0,1) is violated by 1 and carries penalty 2; edge (1,2) is satisfied.
	assert.Equal(t, 3, memetic.AugmentedViolations(g, pm, c))
	assert.Equal(t, 1, memetic.Violations(g, c))
}
