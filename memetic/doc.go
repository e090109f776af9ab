// Package memetic solves the Bandwidth Coloring Problem with a memetic
// algorithm: a population of colorings evolved by path relinking crossover
// and refined by an incremental tabu search with adaptive edge penalties.
//
// Problem:
//
//   - Input: an instance.Graph whose weight w(u,v) > 0 demands
//     |c(u) − c(v)| ≥ w(u,v), and a color budget K.
//   - Output: a Coloring c ∈ [1..K]^n with Violations(g, c) == 0, or nothing.
//
// Components (leaves first):
//
//   - Violations / AugmentedViolations: pure objective evaluators.
//   - delta matrices: per-(node,color) recoloring cost cache, rebuilt once per
//     local search and patched in O(deg·w) after every move.
//   - PenaltyMatrix: per-edge weights grown on chronically violated edges and
//     decayed when they exceed a ceiling (strategic oscillation).
//   - tabu search: raw mode (depth Alpha) and penalty-augmented mode
//     (depth Alpha0); the improvement step runs augmented then raw.
//   - path relinking: crossover walking from one parent toward the other.
//   - population + Solver: elitist generations over random parent pairs.
//
// Determinism:
//
//   - A Solver owns exactly one *rand.Rand, created from Options.Seed
//     (0 ⇒ a fixed default seed) or injected through Options.Rand. Every random
//     decision draws from it, so equal seeds and inputs give equal results.
//
// Concurrency:
//
//   - A Solver is a single-threaded session and must not be used from two
//     goroutines at once. Independent Solvers share nothing mutable (the Graph
//     is read-only) and may run in parallel.
//
// Failure model:
//
//   - Exhausting the search budget is an expected outcome, reported as
//     Result.Coloring == nil with a nil error.
//   - Cancellation of the context (or Options.TimeLimit) stops the search at
//     the next iteration boundary and returns the best-known coloring with
//     Result.Canceled set; it is not an error.
//   - Errors are returned only for invalid configuration.
package memetic
