// Package batch solves every instance file of a directory many times over,
// in parallel, and reports success rates and timings per instance.
package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/op/go-logging"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

// DefaultRuns is the number of independent sessions per instance.
const DefaultRuns = 20

// OutputDirName is the default output directory, relative to the instances.
const OutputDirName = "Output"

// StatsFileName is the CSV summary written to the output directory.
const StatsFileName = "stats.csv"

// ErrInvalidConfig indicates an out-of-domain Config field.
var ErrInvalidConfig = errors.New("batch: invalid config")

// Config drives Run.
type Config struct {
	// Dir holds the instance files; every regular file is read as DIMACS.
	Dir string
	// Output receives stats.csv and one .log per instance; empty means Dir/Output.
	Output string
	// Runs is the number of sessions per instance.
	Runs int
	// Workers bounds the sessions running at once.
	Workers int
	// Seed is the parent of every session seed.
	Seed int64
	// Colors overrides the color budget of every instance when positive.
	Colors int
	// Render writes a .dot drawing of the last feasible coloring per instance.
	Render bool
	// Options configures every session; Seed and Rand are set per session.
	Options memetic.Options

	Log *logging.Logger
}

// DefaultConfig returns a Config for dir with the reference solver settings.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:     dir,
		Runs:    DefaultRuns,
		Workers: runtime.GOMAXPROCS(0),
		Options: memetic.DefaultOptions(),
	}
}

// Validate checks c and the embedded solver options.
func (c Config) Validate() error {
	switch {
	case c.Dir == "":
		return fmt.Errorf("Dir is empty: %w", ErrInvalidConfig)
	case c.Runs < 1:
		return fmt.Errorf("Runs=%d: %w", c.Runs, ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("Workers=%d: %w", c.Workers, ErrInvalidConfig)
	case c.Colors < 0:
		return fmt.Errorf("Colors=%d: %w", c.Colors, ErrInvalidConfig)
	}
	return c.Options.Validate()
}

func (c Config) outputDir() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.Dir, OutputDirName)
}
