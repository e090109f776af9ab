// Objective evaluators.
//
// Both functions are pure: they read the graph, the penalty matrix and the
// coloring and allocate nothing. Each unordered edge is counted once.
package memetic

import "github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"

// EdgeViolation returns the shortfall of an edge with required distance w
// whose endpoints carry colors a and b: max(0, w − |a − b|).
//
// Complexity: O(1).
func EdgeViolation(w, a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d >= w {
		return 0
	}
	return w - d
}

// Violations returns Σ max(0, w(u,v) − |c[u] − c[v]|) over constrained pairs.
// It is 0 iff c satisfies every edge.
//
// Contract: len(c) == g.NumNodes().
//
// Complexity: O(n + m).
func Violations(g *instance.Graph, c Coloring) int {
	var (
		sum  int
		u, v int
		n    = g.NumNodes()
	)
	for u = 0; u < n; u++ {
		for _, v = range g.Neighbors(u) {
			if v > u {
				sum += EdgeViolation(g.Weight(u, v), c[u], c[v])
			}
		}
	}
	return sum
}

// AugmentedViolations returns Violations(g, c) plus the penalty of every
// currently violated pair. A nil penalty matrix contributes nothing.
//
// Complexity: O(n + m).
func AugmentedViolations(g *instance.Graph, p *PenaltyMatrix, c Coloring) int {
	if p == nil {
		return Violations(g, c)
	}

	var (
		sum  int
		viol int
		u, v int
		n    = g.NumNodes()
	)
	for u = 0; u < n; u++ {
		for _, v = range g.Neighbors(u) {
			if v <= u {
				continue
			}
			viol = EdgeViolation(g.Weight(u, v), c[u], c[v])
			if viol > 0 {
				sum += viol + p.At(u, v)
			}
		}
	}
	return sum
}

// nodeDelta returns the change of Violations when node v is recolored to col,
// all other nodes fixed. Only edges incident to v are visited.
//
// Complexity: O(deg(v)).
func nodeDelta(g *instance.Graph, c Coloring, v, col int) int {
	var (
		d   int
		w   int
		old = c[v]
	)
	for _, u := range g.Neighbors(v) {
		w = g.Weight(v, u)
		d += EdgeViolation(w, col, c[u]) - EdgeViolation(w, old, c[u])
	}
	return d
}
