package memetic_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := memetic.DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 20, opts.PopulationSize)
	assert.Equal(t, 10000, opts.Alpha)
	assert.Equal(t, 2000, opts.Alpha0)
	assert.Equal(t, 30, opts.PenaltyCeiling)
	assert.InDelta(t, 0.4, opts.PenaltyDecay, 1e-12)
}

func TestOptions_Validate(t *testing.T) {
	cases := map[string]func(*memetic.Options){
		"PopulationSize":  func(o *memetic.Options) { o.PopulationSize = 1 },
		"MacroIterations": func(o *memetic.Options) { o.MacroIterations = 0 },
		"Alpha":           func(o *memetic.Options) { o.Alpha = 0 },
		"Alpha0":          func(o *memetic.Options) { o.Alpha0 = -1 },
		"TenureBase":      func(o *memetic.Options) { o.TenureBase = -5 },
		"Phases":          func(o *memetic.Options) { o.Phases = 0 },
		"TenureJitter":    func(o *memetic.Options) { o.TenureJitter = -1 },
		"CandidateCap":    func(o *memetic.Options) { o.CandidateCap = 0 },
		"PenaltyCeiling":  func(o *memetic.Options) { o.PenaltyCeiling = -1 },
		"PenaltyDecay":    func(o *memetic.Options) { o.PenaltyDecay = 1 },
		"DiversityRatio":  func(o *memetic.Options) { o.DiversityRatio = 1 },
		"TimeLimit":       func(o *memetic.Options) { o.TimeLimit = -time.Second },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			opts := memetic.DefaultOptions()
			mutate(&opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, memetic.ErrInvalidOption))
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestReadOptions(t *testing.T) {
	opts, err := memetic.ReadOptions(strings.NewReader(`
population_size: 30
alpha0: 0
penalty_decay: 0.5
time_limit: 90s
`))
	require.NoError(t, err)
	assert.Equal(t, 30, opts.PopulationSize)
	assert.Equal(t, 0, opts.Alpha0)
	assert.InDelta(t, 0.5, opts.PenaltyDecay, 1e-12)
	assert.Equal(t, 90*time.Second, opts.TimeLimit)
	// Untouched fields keep their defaults.
	assert.Equal(t, memetic.DefaultAlpha, opts.Alpha)

	opts, err = memetic.ReadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, memetic.DefaultOptions(), opts)
}

func TestReadOptions_Errors(t *testing.T) {
	_, err := memetic.ReadOptions(strings.NewReader("populaton_size: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = memetic.ReadOptions(strings.NewReader("population_size: 1\n"))
	assert.True(t, errors.Is(err, memetic.ErrInvalidOption))
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("macro_iterations: 5\nseed: 42\n"), 0o644))

	opts, err := memetic.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 5, opts.MacroIterations)
	assert.Equal(t, int64(42), opts.Seed)

	_, err = memetic.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
