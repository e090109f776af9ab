package memetic

import (
	"context"
	"math"
	"math/rand"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/metrics"
)

// ctxPollInterval is the number of tabu iterations between context checks.
const ctxPollInterval = 64

// move recolors node v to col.
type move struct{ v, col int }

// tenureSchedule alternates short and long tabu tenures. Phase i uses
// a = ruler(i) = 1,2,1,4,1,2,1,8,…: tenure base·a/8 for base·a/2 iterations.
type tenureSchedule struct {
	tenure []int
	length []int
}

func newTenureSchedule(base, phases int) tenureSchedule {
	ts := tenureSchedule{
		tenure: make([]int, phases),
		length: make([]int, phases),
	}
	var i, a int
	for i = 0; i < phases; i++ {
		a = (i + 1) & -(i + 1)
		ts.tenure[i] = base * a / 8
		ts.length[i] = base * a / 2
	}
	return ts
}

// candidates keeps the best objective value seen and up to limit moves tied
// at that value.
type candidates struct {
	best  int
	moves []move
	limit int
}

func (cs *candidates) reset() {
	cs.best = math.MaxInt
	cs.moves = cs.moves[:0]
}

func (cs *candidates) offer(val int, m move) {
	switch {
	case val < cs.best:
		cs.best = val
		cs.moves = append(cs.moves[:0], m)
	case val == cs.best && len(cs.moves) < cs.limit:
		cs.moves = append(cs.moves, m)
	}
}

// tabuSearch is the local search engine of one solve session. Its buffers
// are reused across invocations; it is not safe for concurrent use.
type tabuSearch struct {
	g      *instance.Graph
	n, k   int
	rng    *rand.Rand
	jitter int
	sched  tenureSchedule

	delta deltaMatrices
	tabu  []int // expiry iteration per (node, color), stride k+1
	free  candidates
	held  candidates
	best  Coloring
}

func newTabuSearch(g *instance.Graph, k int, opts Options, rng *rand.Rand) *tabuSearch {
	n := g.NumNodes()
	return &tabuSearch{
		g:      g,
		n:      n,
		k:      k,
		rng:    rng,
		jitter: opts.TenureJitter,
		sched:  newTenureSchedule(opts.TenureBase, opts.Phases),
		tabu:   make([]int, n*(k+1)),
		free:   candidates{limit: opts.CandidateCap},
		held:   candidates{limit: opts.CandidateCap},
		best:   make(Coloring, n),
	}
}

// run improves c in place and returns its raw violation count, the number of
// moves applied and whether ctx stopped the search.
//
// A nil pm selects the raw objective; otherwise the augmented objective with
// penalties from pm is minimized. In both modes the snapshot kept and written
// back into c is the best coloring by raw violations, so the result is never
// worse than the input.
//
// Termination: raw violations reach 0, maxDepth consecutive moves without a
// new raw best, no candidate move at all, or ctx is done.
//
// Complexity: O(n·k) per iteration plus O(Σ_{u∈N(v)} w(v,u)) per applied move.
func (ts *tabuSearch) run(ctx context.Context, c Coloring, pm *PenaltyMatrix, maxDepth int) (int, int64, bool) {
	augmented := pm != nil
	ts.begin(c, pm)

	var (
		raw      = Violations(ts.g, c)
		obj      = raw
		bestRaw  = raw
		iter     int
		depth    int
		phase    int
		phaseIt  int
		moves    int64
		canceled bool
		cur      int
		chosen   move
		value    int
		ok       bool
	)
	if augmented {
		obj = AugmentedViolations(ts.g, pm, c)
	}

	for depth < maxDepth && bestRaw > 0 {
		if iter%ctxPollInterval == 0 && ctx.Err() != nil {
			canceled = true
			break
		}

		if chosen, value, ok = ts.selectMove(c, obj, iter, bestRaw); !ok {
			break
		}

		ts.forbid(chosen, iter, ts.sched.tenure[phase])
		phaseIt++
		if phaseIt > ts.sched.length[phase] {
			phase = (phase + 1) % len(ts.sched.length)
			phaseIt = 0
		}

		cur = c[chosen.v]
		raw += ts.delta.rawCost(chosen.v, chosen.col) - ts.delta.rawCost(chosen.v, cur)
		obj = value
		ts.delta.apply(ts.g, chosen.v, cur, chosen.col, pm)
		c[chosen.v] = chosen.col
		moves++

		if raw < bestRaw {
			bestRaw = raw
			copy(ts.best, c)
			depth = 0
		} else {
			depth++
		}
		iter++
	}

	copy(c, ts.best)
	if augmented {
		metrics.LocalSearchMovesTotal.WithLabelValues(metrics.ModeAugmented).Add(float64(moves))
	} else {
		metrics.LocalSearchMovesTotal.WithLabelValues(metrics.ModeRaw).Add(float64(moves))
	}
	return bestRaw, moves, canceled
}

// begin prepares a search from c: delta matrices for the objective selected
// by pm, an empty tabu table and c as the best snapshot.
func (ts *tabuSearch) begin(c Coloring, pm *PenaltyMatrix) {
	ts.delta.reset(ts.n, ts.k, pm != nil)
	ts.delta.rebuild(ts.g, c, pm)
	clear(ts.tabu)
	copy(ts.best, c)
}

// selectMove scans every recoloring of a conflicting node and returns the
// move to apply with the objective value it leads to. ok is false when no
// node conflicts.
//
// Free moves win unless aspiration applies: a tabu move is taken when no
// free move exists, or when its value is strictly below both the best free
// value and bestRaw.
func (ts *tabuSearch) selectMove(c Coloring, obj, iter, bestRaw int) (m move, value int, ok bool) {
	var (
		v, col  int
		cur     int
		curCost int
	)
	ts.free.reset()
	ts.held.reset()
	for v = 0; v < ts.n; v++ {
		cur = c[v]
		if ts.delta.rawCost(v, cur) == 0 {
			continue
		}
		curCost = ts.delta.cost(v, cur)
		for col = 1; col <= ts.k; col++ {
			if col == cur {
				continue
			}
			value = obj - curCost + ts.delta.cost(v, col)
			if ts.isTabu(move{v, col}, iter) {
				ts.held.offer(value, move{v, col})
			} else {
				ts.free.offer(value, move{v, col})
			}
		}
	}

	switch {
	case len(ts.free.moves) == 0 && len(ts.held.moves) == 0:
		return move{}, 0, false
	case len(ts.free.moves) == 0 || ts.held.best < min(ts.free.best, bestRaw):
		return pick(ts.held.moves, ts.rng), ts.held.best, true
	}
	return pick(ts.free.moves, ts.rng), ts.free.best, true
}

// forbid makes m tabu until iteration iter + tenure + jitter.
func (ts *tabuSearch) forbid(m move, iter, tenure int) {
	ts.tabu[m.v*(ts.k+1)+m.col] = iter + tenure + ts.tenureJitter()
}

// isTabu reports whether m is still forbidden at iteration iter.
func (ts *tabuSearch) isTabu(m move, iter int) bool {
	return ts.tabu[m.v*(ts.k+1)+m.col] > iter
}

func (ts *tabuSearch) tenureJitter() int {
	if ts.jitter == 0 {
		return 0
	}
	return ts.rng.Intn(ts.jitter)
}
