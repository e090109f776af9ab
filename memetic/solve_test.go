package memetic_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

func TestNewSolver_Errors(t *testing.T) {
	g, err := instance.Cycle(5, 2)
	require.NoError(t, err)

	_, err = memetic.NewSolver(nil, 3, memetic.DefaultOptions())
	assert.True(t, errors.Is(err, memetic.ErrNilGraph))

	_, err = memetic.NewSolver(g, 0, memetic.DefaultOptions())
	assert.True(t, errors.Is(err, memetic.ErrInvalidColors))

	bad := memetic.DefaultOptions()
	bad.Alpha = 0
	_, err = memetic.NewSolver(g, 3, bad)
	assert.True(t, errors.Is(err, memetic.ErrInvalidOption))

	// 1 color on 5 nodes admits a single coloring; that is not an error.
	_, err = memetic.NewSolver(g, 1, memetic.DefaultOptions())
	assert.NoError(t, err)
}

func TestSolve_ColoringSpaceSmallerThanPopulation(t *testing.T) {
	cases := []struct {
		name   string
		w      [][]int
		colors int
	}{
		{"single edge two colors", [][]int{{0, 1}, {1, 0}}, 2},
		{"single node one color", [][]int{{0}}, 1},
		{"path of three two colors", [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := instance.MustGraph(tc.w)
			res, err := memetic.Solve(context.Background(), g, tc.colors, memetic.DefaultOptions())
			require.NoError(t, err)
			require.True(t, res.Feasible)
			assert.True(t, res.Coloring.Valid(g.NumNodes(), tc.colors))
			assert.Zero(t, memetic.Violations(g, res.Coloring))
		})
	}

	// Infeasible and tiny: the search ends with an empty result, not an error.
	g := instance.MustGraph([][]int{{0, 2}, {2, 0}})
	res, err := memetic.Solve(context.Background(), g, 2, memetic.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Nil(t, res.Coloring)
	assert.Equal(t, 1, res.Violations)
}

func TestSolve_FeasibleCycles(t *testing.T) {
	cases := []struct {
		name         string
		n, w, colors int
	}{
		{"odd cycle w1 three colors", 5, 1, 3},
		{"odd cycle w2 five colors", 5, 2, 5},
		{"even cycle w2 three colors", 8, 2, 3},
		{"odd cycle w3 seven colors", 7, 3, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := instance.Cycle(tc.n, tc.w)
			require.NoError(t, err)
			require.Zero(t, bruteForceMin(g, tc.colors), "instance must be feasible")

			res, err := memetic.Solve(context.Background(), g, tc.colors, fastOptions(1))
			require.NoError(t, err)
			require.True(t, res.Feasible)
			require.NotNil(t, res.Coloring)
			assert.True(t, res.Coloring.Valid(tc.n, tc.colors))
			assert.Zero(t, memetic.Violations(g, res.Coloring))
			assert.Zero(t, res.Violations)
			assert.False(t, res.Canceled)
		})
	}
}

func TestSolve_Infeasible(t *testing.T) {
	cases := []struct {
		name   string
		g      func() (*instance.Graph, error)
		colors int
	}{
		// An odd cycle needs colors at distance ≥ 2 alternating around an
		// odd number of nodes, which three colors cannot provide.
		{"odd cycle w2 three colors", func() (*instance.Graph, error) { return instance.Cycle(5, 2) }, 3},
		// Four pairwise distance-2 colors need at least 7 of them.
		{"clique w2 five colors", func() (*instance.Graph, error) { return instance.Complete(4, 2) }, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.g()
			require.NoError(t, err)
			floor := bruteForceMin(g, tc.colors)
			require.Positive(t, floor, "instance must be infeasible")

			opts := fastOptions(3)
			res, err := memetic.Solve(context.Background(), g, tc.colors, opts)
			require.NoError(t, err)
			assert.False(t, res.Feasible)
			assert.Nil(t, res.Coloring)
			assert.False(t, res.Canceled)
			assert.Equal(t, opts.MacroIterations, res.Generations)
			require.NotNil(t, res.Best)
			assert.Equal(t, memetic.Violations(g, res.Best), res.Violations)
			assert.Equal(t, floor, res.Violations, "tiny instances reach the optimum")
			assert.Positive(t, res.Children)
		})
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g := randomGraph(t, 77, 30, 0.25, 3)

	run := func() memetic.Result {
		opts := fastOptions(0)
		opts.Rand = rand.New(rand.NewSource(2024))
		res, err := memetic.Solve(context.Background(), g, 7, opts)
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()

	assert.Equal(t, first.Best, second.Best)
	assert.Equal(t, first.Coloring, second.Coloring)
	assert.Equal(t, first.Violations, second.Violations)
	assert.Equal(t, first.Moves, second.Moves)
	assert.Equal(t, first.Children, second.Children)
}

func TestSolve_SeedSelectsStream(t *testing.T) {
	g := randomGraph(t, 78, 30, 0.3, 3)

	solve := func(seed int64) memetic.Result {
		s, err := memetic.NewSolver(g, 6, fastOptions(seed))
		require.NoError(t, err)
		return s.Solve(context.Background())
	}
	assert.Equal(t, solve(5).Best, solve(5).Best)
}

func TestSolve_Canceled(t *testing.T) {
	g, err := instance.Complete(4, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := memetic.Solve(ctx, g, 5, fastOptions(1))
	require.NoError(t, err, "cancellation is not an error")
	assert.True(t, res.Canceled)
	assert.False(t, res.Feasible)
	assert.Nil(t, res.Coloring)
	require.NotNil(t, res.Best)
	assert.True(t, res.Best.Valid(4, 5))
}

func TestSolve_TimeLimit(t *testing.T) {
	// A large infeasible clique keeps the search busy far beyond the limit.
	g, err := instance.Complete(60, 3)
	require.NoError(t, err)

	opts := memetic.DefaultOptions()
	opts.TimeLimit = 50 * time.Millisecond

	start := time.Now()
	res, err := memetic.Solve(context.Background(), g, 20, opts)
	require.NoError(t, err)
	assert.True(t, res.Canceled)
	assert.Nil(t, res.Coloring)
	assert.Less(t, time.Since(start), 5*time.Second)
}
