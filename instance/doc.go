// SPDX-License-Identifier: MIT

// Package instance holds the input side of the bandwidth coloring solver:
// the immutable weighted constraint Graph, the Instance wrapper that pairs a
// graph with its color budget, DIMACS-style instance files and a handful of
// canonical generators.
//
// Graph model:
//
//   - Nodes are the integers 0..n-1.
//   - Weight(u,v) == 0 means "no constraint"; Weight(u,v) == d > 0 means the
//     colors of u and v must differ by at least d.
//   - The weight matrix is square, symmetric, non-negative, with a zero
//     diagonal. NewGraph enforces this once; the solver never re-checks.
//   - Adjacency lists are derived once at construction and shared read-only.
//
// File format (".col.b" bandwidth coloring instances):
//
//	c <free text>            comment, ignored
//	n <node> <value>         node line, ignored
//	p edge <nodes> <edges> [<colors>]
//	e <u> <v> <distance>     1-based endpoints, self-loops ignored
//
// Errors:
//
//	ErrNilMatrix        - nil weight matrix.
//	ErrNonSquare        - rows of unequal length or empty matrix.
//	ErrNonZeroDiagonal  - a node constrains itself.
//	ErrNegativeWeight   - negative distance.
//	ErrAsymmetry        - w(u,v) != w(v,u).
//	ErrTooFewVertices   - generator size below its minimum.
//	ErrInvalidProbability, ErrInvalidWeight - generator parameters.
//	ErrMalformedFile    - unparsable instance file.
package instance
