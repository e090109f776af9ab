package memetic_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

func benchGraph(b *testing.B, n int) *instance.Graph {
	b.Helper()
	g, err := instance.RandomSparse(n, 0.2, 1, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkViolations(b *testing.B) {
	g := benchGraph(b, 200)
	c := randomColoring(rand.New(rand.NewSource(2)), 200, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = memetic.Violations(g, c)
	}
}

func BenchmarkRelink(b *testing.B) {
	g := benchGraph(b, 200)
	rng := rand.New(rand.NewSource(3))
	x := randomColoring(rng, 200, 30)
	y := randomColoring(rng, 200, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = memetic.Relink(g, x, y)
	}
}

func BenchmarkSolve(b *testing.B) {
	g := benchGraph(b, 60)
	opts := memetic.DefaultOptions()
	opts.PopulationSize = 8
	opts.Alpha = 1000
	opts.Alpha0 = 200
	opts.MacroIterations = 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts.Seed = int64(i + 1)
		if _, err := memetic.Solve(context.Background(), g, 12, opts); err != nil {
			b.Fatal(err)
		}
	}
}
