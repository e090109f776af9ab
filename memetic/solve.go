package memetic

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/op/go-logging"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/metrics"
)

// Solver runs memetic search sessions on one graph with a fixed color budget.
// A Solver owns its RNG, population, tabu search buffers and penalty matrix;
// it must not be used from two goroutines at once. Independent Solvers share
// nothing and may run in parallel.
type Solver struct {
	g    *instance.Graph
	n, k int
	opts Options
	rng  *rand.Rand
	log  *logging.Logger

	search  *tabuSearch
	pop     *population
	size    int // min(PopulationSize, colors^n)
	penalty *PenaltyMatrix

	best     Coloring
	bestViol int
	canceled bool
	stats    Result
}

// NewSolver validates its inputs and prepares a session for g with colors
// available colors.
//
// When fewer than opts.PopulationSize distinct colorings exist, the session
// keeps a population of all colors^n of them.
//
// Errors: ErrNilGraph, ErrInvalidColors, ErrInvalidOption (wrapped with the
// field).
//
// Complexity: O(n·colors) for the search buffers.
func NewSolver(g *instance.Graph, colors int, opts Options) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if colors < 1 {
		return nil, ErrInvalidColors
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	space := 1
	for i := 0; i < n && space < opts.PopulationSize; i++ {
		space *= colors
	}

	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}
	log := opts.Log
	if log == nil {
		log = logger.NewNopLogger("memetic")
	}

	return &Solver{
		g:      g,
		n:      n,
		k:      colors,
		opts:   opts,
		rng:    rng,
		log:    log,
		search: newTabuSearch(g, colors, opts, rng),
		pop:    newPopulation(min(opts.PopulationSize, space)),
		size:   min(opts.PopulationSize, space),
	}, nil
}

// Solve is NewSolver followed by Solver.Solve.
func Solve(ctx context.Context, g *instance.Graph, colors int, opts Options) (Result, error) {
	s, err := NewSolver(g, colors, opts)
	if err != nil {
		return Result{}, err
	}
	return s.Solve(ctx), nil
}

// Solve runs one search session and returns its outcome. Every call starts a
// fresh session with a zero penalty matrix; the RNG stream continues.
//
// The session performs up to MacroIterations macro-iterations. Each seeds a
// population of improved random colorings (carrying over the best-known
// coloring after the first), then consumes every member pair in random order:
// both relinking children are improved by an augmented then a raw tabu
// search, the penalty matrix learns from what stays violated, and a child
// replaces the worst member when it is strictly better and far enough from
// every member. The session ends the moment a feasible coloring is known.
//
// Exhausting the budget yields Result.Coloring == nil. Cancellation of ctx,
// or expiry of Options.TimeLimit, ends the session early with
// Result.Canceled set; neither is an error.
func (s *Solver) Solve(ctx context.Context) Result {
	start := time.Now()
	if s.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.TimeLimit)
		defer cancel()
	}

	s.penalty = NewPenaltyMatrix(s.n, s.opts.PenaltyCeiling, s.opts.PenaltyDecay)
	s.canceled = false
	s.stats = Result{}
	s.best = randomColoring(s.n, s.k, s.rng)
	s.bestViol = Violations(s.g, s.best)

	var gen int
	for gen = 0; gen < s.opts.MacroIterations && !s.finished(ctx); gen++ {
		s.stats.Generations++
		s.log.Debugf("generation %d: seeding %d colorings, best %d violations", gen, s.size, s.bestViol)

		s.seed(ctx)
		if s.finished(ctx) {
			break
		}
		if gen > 0 && s.pop.replace(s.pop.worst(), s.best.Clone(), s.bestViol) {
			s.log.Debugf("generation %d: best coloring carried over", gen)
		}
		s.evolve(ctx)
	}

	return s.result(start)
}

// finished reports whether the session must stop, latching cancellation.
func (s *Solver) finished(ctx context.Context) bool {
	if s.bestViol == 0 || s.canceled {
		return true
	}
	if ctx.Err() != nil {
		s.canceled = true
		return true
	}
	return false
}

// seed fills the population with the best distinct colorings among
// 3·size random ones improved by raw tabu search. When duplicates
// leave it short, up to as many further improved candidates are tried, and
// any remaining slots take distinct random colorings.
func (s *Solver) seed(ctx context.Context) {
	var (
		size  = s.size
		tries = 3 * size
		cands = make([]member, 0, tries)
		c     Coloring
		viol  int
		i     int
	)
	s.pop.reset()

	for i = 0; i < tries; i++ {
		if c, viol = s.improvedRandom(ctx); s.finished(ctx) {
			return
		}
		cands = append(cands, member{c: c, viol: viol})
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].viol < cands[b].viol })
	for _, m := range cands {
		if s.pop.size() == size {
			break
		}
		s.pop.add(m.c, m.viol)
	}

	for i = 0; i < tries && s.pop.size() < size; i++ {
		if c, viol = s.improvedRandom(ctx); s.finished(ctx) {
			return
		}
		s.pop.add(c, viol)
	}
	for s.pop.size() < size {
		c = randomColoring(s.n, s.k, s.rng)
		s.pop.add(c, Violations(s.g, c))
	}
}

// improvedRandom returns a random coloring after a raw tabu search pass and
// records it as best-known when it improves.
func (s *Solver) improvedRandom(ctx context.Context) (Coloring, int) {
	c := randomColoring(s.n, s.k, s.rng)
	viol, moves, canceled := s.search.run(ctx, c, nil, s.opts.Alpha)
	s.stats.Moves += moves
	s.canceled = s.canceled || canceled
	s.consider(c, viol)
	return c, viol
}

// evolve consumes the pair pool of the current population in random order.
// Pairs reference slots, so a replaced member is relinked in its new form.
func (s *Solver) evolve(ctx context.Context) {
	var (
		pool = s.pop.pairs()
		i    int
		p    pair
		a, b Coloring
	)
	for len(pool) > 0 {
		if s.finished(ctx) {
			return
		}

		i = s.rng.Intn(len(pool))
		p = pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		a, b = s.parents(p)
		first, _ := Relink(s.g, a, b)
		second, _ := Relink(s.g, b, a)

		s.improve(ctx, first)
		if s.finished(ctx) {
			return
		}
		s.improve(ctx, second)
	}
}

// parents reads the current members of p's slots.
func (s *Solver) parents(p pair) (Coloring, Coloring) {
	return s.pop.at(p.a).c, s.pop.at(p.b).c
}

// improve runs the two-phase tabu search on child, feeds the penalty matrix,
// updates the best-known coloring and offers child to the population.
func (s *Solver) improve(ctx context.Context, child Coloring) {
	var (
		viol     int
		moves    int64
		canceled bool
	)
	if s.opts.Alpha0 > 0 {
		viol, moves, canceled = s.search.run(ctx, child, s.penalty, s.opts.Alpha0)
		s.stats.Moves += moves
	}
	if !canceled {
		viol, moves, canceled = s.search.run(ctx, child, nil, s.opts.Alpha)
		s.stats.Moves += moves
	}
	s.canceled = s.canceled || canceled

	s.stats.Children++
	metrics.ChildrenTotal.Inc()

	if s.penalty.Update(s.g, child) {
		s.stats.Rescales++
		metrics.PenaltyRescalesTotal.Inc()
		s.log.Debugf("penalty matrix rescaled, max entry now %d", s.penalty.Max())
	}

	s.consider(child, viol)

	w := s.pop.worst()
	if viol >= s.pop.at(w).viol {
		return
	}
	if float64(s.pop.minHamming(child)) > s.opts.DiversityRatio*float64(s.n) {
		s.pop.replace(w, child, viol)
	}
}

func (s *Solver) consider(c Coloring, viol int) {
	if viol >= s.bestViol {
		return
	}
	s.best = c.Clone()
	s.bestViol = viol
	s.log.Debugf("best coloring improved to %d violations", viol)
}

func (s *Solver) result(start time.Time) Result {
	res := s.stats
	res.Best = s.best.Clone()
	res.Violations = s.bestViol
	res.Elapsed = time.Since(start)

	outcome := metrics.Infeasible
	switch {
	case s.bestViol == 0:
		res.Coloring = s.best.Clone()
		res.Feasible = true
		outcome = metrics.Feasible
	case s.canceled:
		res.Canceled = true
		outcome = metrics.Canceled
	}
	metrics.SolvesTotal.WithLabelValues(outcome).Inc()
	metrics.SolveDurationSeconds.Observe(res.Elapsed.Seconds())
	return res
}
