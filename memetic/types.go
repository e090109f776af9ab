package memetic

import (
	"errors"
	"time"
)

// Sentinel errors returned by NewSolver and Options.Validate.
var (
	// ErrNilGraph indicates a nil *instance.Graph.
	ErrNilGraph = errors.New("memetic: graph is nil")

	// ErrInvalidColors indicates a color budget below 1.
	ErrInvalidColors = errors.New("memetic: color count must be positive")

	// ErrInvalidOption indicates an out-of-domain Options field; the field is
	// named in the wrapping message.
	ErrInvalidOption = errors.New("memetic: invalid option")
)

// Coloring assigns a color in [1..K] to every node; index = node.
type Coloring []int

// Clone returns an independent copy of c.
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}
	return append(Coloring(nil), c...)
}

// Equal reports whether c and o are value-identical.
func (c Coloring) Equal(o Coloring) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Hamming returns the number of positions where c and o differ.
// Both colorings must have the same length.
func (c Coloring) Hamming(o Coloring) int {
	var d int
	for i := range c {
		if c[i] != o[i] {
			d++
		}
	}
	return d
}

// Valid reports whether c has length n and every color lies in [1..k].
func (c Coloring) Valid(n, k int) bool {
	if len(c) != n {
		return false
	}
	for _, col := range c {
		if col < 1 || col > k {
			return false
		}
	}
	return true
}

// Result is the outcome of Solver.Solve.
type Result struct {
	// Coloring is a feasible coloring (zero violations), or nil when none was
	// found within the search budget.
	Coloring Coloring

	// Best is the best-known coloring of the session, feasible or not.
	Best Coloring

	// Violations is Violations(g, Best).
	Violations int

	// Feasible reports Coloring != nil.
	Feasible bool

	// Canceled reports that the context or TimeLimit stopped the search early.
	Canceled bool

	// Generations is the number of macro-iterations started.
	Generations int

	// Children is the number of path relinking children improved.
	Children int

	// Moves is the number of tabu search moves applied.
	Moves int64

	// Rescales is the number of penalty matrix rescales.
	Rescales int

	// Elapsed is the wall-clock duration of Solve.
	Elapsed time.Duration
}
