package memetic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/op/go-logging"
)

// Default tuning, matching the published memetic configuration.
const (
	DefaultPopulationSize  = 20
	DefaultMacroIterations = 2
	DefaultAlpha           = 10000
	DefaultAlpha0          = 2000
	DefaultTenureBase      = 50
	DefaultPhases          = 15
	DefaultTenureJitter    = 3
	DefaultCandidateCap    = 100
	DefaultPenaltyCeiling  = 30
	DefaultPenaltyDecay    = 0.4
	DefaultDiversityRatio  = 0.1
)

// Options configures a Solver.
//
// PopulationSize  – number of colorings kept (≥ 2).
// MacroIterations – outer restarts with elitist carry-over (≥ 1).
// Alpha           – raw tabu search depth: non-improving moves before stopping (≥ 1).
// Alpha0          – augmented tabu search depth (≥ 0; 0 skips the augmented pass).
// TenureBase      – Tmax of the tenure schedule: tenure = base·a/8, phase = base·a/2.
// Phases          – number of schedule phases; a follows the ruler sequence 1,2,1,4,….
// TenureJitter    – tenure gets a uniform extra in [0, TenureJitter).
// CandidateCap    – maximum tied candidates kept per iteration for tie-breaking.
// PenaltyCeiling  – rescale the penalty matrix once its maximum exceeds this.
// PenaltyDecay    – rescale factor, 0 < decay < 1, result floored.
// DiversityRatio  – a child enters only if its Hamming distance to every member exceeds ratio·n.
// Seed            – seed of the session RNG; 0 selects a fixed default.
// TimeLimit       – optional wall-clock budget; 0 means unlimited.
// Rand            – optional RNG; when set, Seed is ignored.
// Log             – optional logger; nil discards solver logs.
type Options struct {
	PopulationSize  int           `yaml:"population_size"`
	MacroIterations int           `yaml:"macro_iterations"`
	Alpha           int           `yaml:"alpha"`
	Alpha0          int           `yaml:"alpha0"`
	TenureBase      int           `yaml:"tenure_base"`
	Phases          int           `yaml:"phases"`
	TenureJitter    int           `yaml:"tenure_jitter"`
	CandidateCap    int           `yaml:"candidate_cap"`
	PenaltyCeiling  int           `yaml:"penalty_ceiling"`
	PenaltyDecay    float64       `yaml:"penalty_decay"`
	DiversityRatio  float64       `yaml:"diversity_ratio"`
	Seed            int64         `yaml:"seed"`
	TimeLimit       time.Duration `yaml:"time_limit"`

	Rand *rand.Rand      `yaml:"-"`
	Log  *logging.Logger `yaml:"-"`
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		PopulationSize:  DefaultPopulationSize,
		MacroIterations: DefaultMacroIterations,
		Alpha:           DefaultAlpha,
		Alpha0:          DefaultAlpha0,
		TenureBase:      DefaultTenureBase,
		Phases:          DefaultPhases,
		TenureJitter:    DefaultTenureJitter,
		CandidateCap:    DefaultCandidateCap,
		PenaltyCeiling:  DefaultPenaltyCeiling,
		PenaltyDecay:    DefaultPenaltyDecay,
		DiversityRatio:  DefaultDiversityRatio,
	}
}

// Validate checks every field against its domain and returns ErrInvalidOption
// wrapped with the first offending field.
//
// Complexity: O(1).
func (o Options) Validate() error {
	switch {
	case o.PopulationSize < 2:
		return invalid("PopulationSize", o.PopulationSize)
	case o.MacroIterations < 1:
		return invalid("MacroIterations", o.MacroIterations)
	case o.Alpha < 1:
		return invalid("Alpha", o.Alpha)
	case o.Alpha0 < 0:
		return invalid("Alpha0", o.Alpha0)
	case o.TenureBase < 0:
		return invalid("TenureBase", o.TenureBase)
	case o.Phases < 1:
		return invalid("Phases", o.Phases)
	case o.TenureJitter < 0:
		return invalid("TenureJitter", o.TenureJitter)
	case o.CandidateCap < 1:
		return invalid("CandidateCap", o.CandidateCap)
	case o.PenaltyCeiling < 0:
		return invalid("PenaltyCeiling", o.PenaltyCeiling)
	case !(o.PenaltyDecay > 0 && o.PenaltyDecay < 1):
		return invalid("PenaltyDecay", o.PenaltyDecay)
	case o.DiversityRatio < 0 || o.DiversityRatio >= 1:
		return invalid("DiversityRatio", o.DiversityRatio)
	case o.TimeLimit < 0:
		return invalid("TimeLimit", o.TimeLimit)
	}
	return nil
}

func invalid(field string, v interface{}) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidOption)
}
