package memetic

import (
	"math"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
)

// Relink walks between two parents and returns the child it ends on, plus the
// number of substitution steps taken. Neither parent is modified.
//
// Two chains grow in alternation, one rooted at each parent. The pair
// (prev, last) starts as (first, second). Every step takes the value for one
// remaining differing position from second on even steps and from first on
// odd steps, choosing the position whose substitution into prev yields the
// lowest violation count; the result becomes the new last and the old last
// becomes prev. The walk ends when no differing position remains and the
// final last is returned, not the best coloring seen along the way.
//
// Contract:
//   - len(first) == len(second) == g.NumNodes().
//   - Identical parents yield a copy of second and 0 steps.
//   - Every position of the child holds first[i] or second[i]; positions where
//     the parents agree are unchanged. Steps equal the Hamming distance.
//
// Complexity: O(d · Σ_{i∈D} deg(i)) with d = Hamming(first, second).
func Relink(g *instance.Graph, first, second Coloring) (Coloring, int) {
	var diff []int
	for i := range first {
		if first[i] != second[i] {
			diff = append(diff, i)
		}
	}
	if len(diff) == 0 {
		return second.Clone(), 0
	}

	var (
		prev     = first.Clone()
		last     = second.Clone()
		prevCost = Violations(g, prev)
		lastCost = Violations(g, last)
		source   Coloring
		step     int
		bestIdx  int
		bestCost int
		cost     int
		node     int
	)
	for step = 0; len(diff) > 0; step++ {
		source = second
		if step%2 == 1 {
			source = first
		}

		bestIdx, bestCost = 0, math.MaxInt
		for i, v := range diff {
			cost = prevCost + nodeDelta(g, prev, v, source[v])
			if cost < bestCost {
				bestIdx, bestCost = i, cost
			}
		}

		node = diff[bestIdx]
		prev[node] = source[node]
		prev, last = last, prev
		prevCost, lastCost = lastCost, bestCost

		diff = append(diff[:bestIdx], diff[bestIdx+1:]...)
	}
	return last, step
}
