package memetic

import (
	"math"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
)

// PenaltyMatrix holds one non-negative weight per node pair, symmetric, grown
// on edges that stay violated after local search. It belongs to one solve
// session and is never reset while the session runs.
type PenaltyMatrix struct {
	n       int
	p       []int // n*n, row-major, symmetric
	max     int   // largest entry after the last Update
	ceiling int
	decay   float64
}

// NewPenaltyMatrix returns an all-zero n×n matrix that rescales by decay
// (0 < decay < 1) whenever its maximum entry exceeds ceiling.
func NewPenaltyMatrix(n, ceiling int, decay float64) *PenaltyMatrix {
	return &PenaltyMatrix{
		n:       n,
		p:       make([]int, n*n),
		ceiling: ceiling,
		decay:   decay,
	}
}

// At returns the penalty of pair (u,v).
func (pm *PenaltyMatrix) At(u, v int) int { return pm.p[u*pm.n+v] }

// Max returns the largest entry observed by the last Update (after any rescale).
func (pm *PenaltyMatrix) Max() int { return pm.max }

// Update adds 1 to both entries of every pair violated by c, then rescales
// when the maximum entry exceeds the ceiling. It reports whether a rescale
// happened.
//
// Complexity: O(n + m), plus O(m) for a rescale.
func (pm *PenaltyMatrix) Update(g *instance.Graph, c Coloring) bool {
	var (
		u, v int
		top  int
		e    int
	)
	for u = 0; u < pm.n; u++ {
		for _, v = range g.Neighbors(u) {
			if v <= u {
				continue
			}
			if EdgeViolation(g.Weight(u, v), c[u], c[v]) > 0 {
				pm.p[u*pm.n+v]++
				pm.p[v*pm.n+u]++
			}
			// Only edge entries ever grow, so scanning edges finds the maximum.
			if e = pm.p[u*pm.n+v]; e > top {
				top = e
			}
		}
	}
	pm.max = top

	if pm.max <= pm.ceiling {
		return false
	}
	pm.Rescale()
	return true
}

// Rescale multiplies every entry by the decay factor and floors the result.
// Entries never increase and their relative order is preserved.
//
// Complexity: O(n²).
func (pm *PenaltyMatrix) Rescale() {
	var top int
	for i, e := range pm.p {
		if e == 0 {
			continue
		}
		e = int(math.Floor(pm.decay * float64(e)))
		pm.p[i] = e
		if e > top {
			top = e
		}
	}
	pm.max = top
}
