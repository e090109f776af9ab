// SPDX-License-Identifier: MIT

// Canonical constraint-graph generators.
//
// Determinism:
//   - Stable pair order: for each i asc, j asc with j>i.
//   - RandomSparse draws exactly one Bernoulli trial per pair, and one weight
//     draw per accepted pair, so a fixed seed always yields the same graph.

package instance

import (
	"fmt"
	"math/rand"
)

// File-local constants (method tags for error context, parameter minima).
const (
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes    = 3
	minCompleteNodes = 1
	minSparseNodes   = 1
)

// Cycle returns the n-node ring C_n where every edge requires distance w.
//
// Contract: n ≥ 3, w ≥ 1.
//
// Complexity: O(n²) (matrix allocation), O(n) edges.
func Cycle(n, w int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	if w < 1 {
		return nil, fmt.Errorf("%s: w=%d: %w", methodCycle, w, ErrInvalidWeight)
	}

	m := zeroMatrix(n)
	var i, j int
	for i = 0; i < n; i++ {
		j = (i + 1) % n
		m[i][j] = w
		m[j][i] = w
	}
	return NewGraph(m)
}

// Complete returns the clique K_n where every pair requires distance w.
//
// Contract: n ≥ 1, w ≥ 1.
//
// Complexity: O(n²).
func Complete(n, w int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	if w < 1 {
		return nil, fmt.Errorf("%s: w=%d: %w", methodComplete, w, ErrInvalidWeight)
	}

	m := zeroMatrix(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m[i][j] = w
			m[j][i] = w
		}
	}
	return NewGraph(m)
}

// RandomSparse samples an Erdős–Rényi-like constraint graph: every unordered
// pair is constrained independently with probability p, with a distance drawn
// uniformly from [minW, maxW].
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1, 1 ≤ minW ≤ maxW.
//   - rng is required when 0 < p < 1 or minW < maxW.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, minW, maxW int, rng *rand.Rand) (*Graph, error) {
	if n < minSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if minW < 1 || maxW < minW {
		return nil, fmt.Errorf("%s: weights [%d,%d]: %w", methodRandomSparse, minW, maxW, ErrInvalidWeight)
	}
	if rng == nil && ((p > 0 && p < 1) || minW < maxW) {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	m := zeroMatrix(n)
	var (
		i, j int
		w    int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// Bernoulli trial; p ∈ {0,1} needs no draw.
			if p == 0 || (p < 1 && rng.Float64() >= p) {
				continue
			}
			w = minW
			if maxW > minW {
				w += rng.Intn(maxW - minW + 1)
			}
			m[i][j] = w
			m[j][i] = w
		}
	}
	return NewGraph(m)
}

func zeroMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}
