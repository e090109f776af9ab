package memetic

import "github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"

// deltaMatrices caches, for every node v and color col, what v's incident
// edges would cost if v were recolored to col while its neighbors keep their
// colors:
//
//	raw[v][col] = Σ_{u∈N(v)} max(0, w(v,u) − |col − c[u]|)
//	pen[v][col] = Σ_{u∈N(v), |col − c[u]| < w(v,u)} P(v,u)
//
// Moving v from a to b changes the raw objective by raw[v][b] − raw[v][a]
// (augmented: plus pen[v][b] − pen[v][a]), an O(1) lookup. Rows are k+1 wide
// so colors index directly; column 0 is unused.
type deltaMatrices struct {
	n, k      int
	stride    int
	raw       []int
	pen       []int
	augmented bool
}

// reset sizes the buffers for an n-node, k-color search, reusing capacity.
func (d *deltaMatrices) reset(n, k int, augmented bool) {
	d.n, d.k, d.stride = n, k, k+1
	d.augmented = augmented
	d.raw = resize(d.raw, n*d.stride)
	if augmented {
		d.pen = resize(d.pen, n*d.stride)
	}
}

// rebuild recomputes both matrices from scratch for coloring c. Every edge
// contributes to the color window of width 2w−1 around the neighbor's color,
// which is the only place its shortfall is positive.
//
// Complexity: O(n·k + Σ_v Σ_{u∈N(v)} w(v,u)).
func (d *deltaMatrices) rebuild(g *instance.Graph, c Coloring, pm *PenaltyMatrix) {
	clear(d.raw)
	if d.augmented {
		clear(d.pen)
	}

	var v int
	for v = 0; v < d.n; v++ {
		for _, u := range g.Neighbors(v) {
			d.addWindow(v, c[u], g.Weight(v, u), +1, d.penaltyOf(pm, v, u))
		}
	}
}

// apply patches the matrices after node v moves from color from to color to:
// only v's neighbors see a change, and only inside the windows around from
// and to.
//
// Complexity: O(Σ_{u∈N(v)} w(v,u)).
func (d *deltaMatrices) apply(g *instance.Graph, v, from, to int, pm *PenaltyMatrix) {
	var w, p int
	for _, u := range g.Neighbors(v) {
		w = g.Weight(u, v)
		p = d.penaltyOf(pm, u, v)
		d.addWindow(u, from, w, -1, p)
		d.addWindow(u, to, w, +1, p)
	}
}

// addWindow adds sign·(w − |col − center|) to raw[v][col] (and sign·p to
// pen[v][col]) for every col in [center−w+1, center+w−1] ∩ [1, k].
func (d *deltaMatrices) addWindow(v, center, w, sign, p int) {
	lo := center - w + 1
	if lo < 1 {
		lo = 1
	}
	hi := center + w - 1
	if hi > d.k {
		hi = d.k
	}

	var (
		row = v * d.stride
		col int
		gap int
	)
	for col = lo; col <= hi; col++ {
		gap = col - center
		if gap < 0 {
			gap = -gap
		}
		d.raw[row+col] += sign * (w - gap)
		if d.augmented {
			d.pen[row+col] += sign * p
		}
	}
}

func (d *deltaMatrices) penaltyOf(pm *PenaltyMatrix, u, v int) int {
	if !d.augmented || pm == nil {
		return 0
	}
	return pm.At(u, v)
}

// cost returns the cached objective contribution of giving v color col.
func (d *deltaMatrices) cost(v, col int) int {
	i := v*d.stride + col
	if d.augmented {
		return d.raw[i] + d.pen[i]
	}
	return d.raw[i]
}

// rawCost returns the cached raw contribution of giving v color col.
func (d *deltaMatrices) rawCost(v, col int) int {
	return d.raw[v*d.stride+col]
}

func resize(buf []int, n int) []int {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]int, n)
}
