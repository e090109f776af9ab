// SPDX-License-Identifier: MIT

package instance

import "errors"

// Sentinel errors for graph construction, generators and instance files.
// Callers match them with errors.Is; context is attached by wrapping.
var (
	// ErrNilMatrix indicates a nil weight matrix was passed to NewGraph.
	ErrNilMatrix = errors.New("instance: weight matrix is nil")

	// ErrNonSquare indicates an empty matrix or a row whose length differs from the row count.
	ErrNonSquare = errors.New("instance: weight matrix is not square")

	// ErrNonZeroDiagonal indicates w(u,u) != 0.
	ErrNonZeroDiagonal = errors.New("instance: diagonal must be zero")

	// ErrNegativeWeight indicates a negative required distance.
	ErrNegativeWeight = errors.New("instance: negative edge weight")

	// ErrAsymmetry indicates w(u,v) != w(v,u).
	ErrAsymmetry = errors.New("instance: weight matrix is not symmetric")

	// ErrTooFewVertices indicates a generator size below the allowed minimum.
	ErrTooFewVertices = errors.New("instance: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("instance: probability out of range")

	// ErrInvalidWeight indicates a non-positive generator edge weight or weight range.
	ErrInvalidWeight = errors.New("instance: invalid edge weight")

	// ErrNeedRandSource indicates a stochastic generator was called without an RNG.
	ErrNeedRandSource = errors.New("instance: rng is required")

	// ErrMalformedFile indicates an instance file that cannot be parsed.
	ErrMalformedFile = errors.New("instance: malformed instance file")
)

// Instance pairs a constraint graph with the number of colors available to it.
type Instance struct {
	// Name identifies the instance, usually the file name without extension.
	Name string

	// Graph is the immutable constraint graph.
	Graph *Graph

	// Colors is the color budget K; colorings use values 1..K.
	Colors int
}
