package memetic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

// fastOptions keeps end-to-end runs on tiny graphs well under a second.
func fastOptions(seed int64) memetic.Options {
	opts := memetic.DefaultOptions()
	opts.PopulationSize = 6
	opts.Alpha = 300
	opts.Alpha0 = 60
	opts.Seed = seed
	return opts
}

// bruteForceMin enumerates all k^n colorings and returns the smallest
// violation count. Only for tiny graphs.
func bruteForceMin(g *instance.Graph, k int) int {
	n := g.NumNodes()
	c := make(memetic.Coloring, n)
	for i := range c {
		c[i] = 1
	}

	best := math.MaxInt
	for {
		if v := memetic.Violations(g, c); v < best {
			best = v
		}
		// odometer increment
		i := 0
		for i < n && c[i] == k {
			c[i] = 1
			i++
		}
		if i == n {
			return best
		}
		c[i]++
	}
}

func randomGraph(t *testing.T, seed int64, n int, p float64, maxW int) *instance.Graph {
	t.Helper()
	g, err := instance.RandomSparse(n, p, 1, maxW, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return g
}

func randomColoring(rng *rand.Rand, n, k int) memetic.Coloring {
	c := make(memetic.Coloring, n)
	for i := range c {
		c[i] = 1 + rng.Intn(k)
	}
	return c
}
