// SPDX-License-Identifier: MIT

package instance

// Graph is an immutable, symmetric, weighted constraint graph.
//
// The weight matrix is stored flat in row-major order; adjacency lists hold,
// for every node, the neighbors with a positive required distance in
// ascending order. A *Graph is safe for concurrent readers.
type Graph struct {
	n       int     // number of nodes
	edges   int     // number of unordered pairs with positive weight
	maxW    int     // largest weight in the matrix
	weights []int   // n*n, weights[u*n+v]
	adj     [][]int // adj[u] = neighbors of u, ascending
}

// NewGraph validates a square weight matrix and returns the Graph built from
// a private copy of it.
//
// Contract:
//   - w must be non-nil and square with n ≥ 1 rows.
//   - w[u][u] == 0, w[u][v] ≥ 0, w[u][v] == w[v][u].
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal, ErrNegativeWeight,
// ErrAsymmetry (wrapped with the offending position).
//
// Complexity: O(n²) time and space.
func NewGraph(w [][]int) (*Graph, error) {
	n, err := validateWeights(w)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		n:       n,
		weights: make([]int, n*n),
		adj:     make([][]int, n),
	}

	var u, v, d int
	for u = 0; u < n; u++ {
		copy(g.weights[u*n:(u+1)*n], w[u])
		for v = 0; v < n; v++ {
			d = w[u][v]
			if d == 0 {
				continue
			}
			g.adj[u] = append(g.adj[u], v)
			if v > u {
				g.edges++
			}
			if d > g.maxW {
				g.maxW = d
			}
		}
	}

	return g, nil
}

// MustGraph is NewGraph for literals known to be valid; it panics on error.
func MustGraph(w [][]int) *Graph {
	g, err := NewGraph(w)
	if err != nil {
		panic(err)
	}
	return g
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of constrained unordered pairs.
func (g *Graph) NumEdges() int { return g.edges }

// MaxWeight returns the largest required distance (0 for an edgeless graph).
func (g *Graph) MaxWeight() int { return g.maxW }

// Weight returns the required color distance between u and v.
// Indices are not range-checked.
func (g *Graph) Weight(u, v int) int { return g.weights[u*g.n+v] }

// Neighbors returns the neighbors of u in ascending order.
// The returned slice is shared and must not be modified.
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }

// Degree returns the number of neighbors of u.
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// Row returns the weight row of u. The slice is shared and must not be modified.
func (g *Graph) Row(u int) []int { return g.weights[u*g.n : (u+1)*g.n] }

// Matrix returns a deep copy of the weight matrix.
func (g *Graph) Matrix() [][]int {
	out := make([][]int, g.n)
	var u int
	for u = 0; u < g.n; u++ {
		out[u] = append([]int(nil), g.Row(u)...)
	}
	return out
}

// Edge is one constrained unordered pair, U < V.
type Edge struct {
	U, V   int
	Weight int
}

// Edges lists every constrained pair once, ordered by (U, V).
//
// Complexity: O(n + m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	var u int
	for u = 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, Edge{U: u, V: v, Weight: g.Weight(u, v)})
			}
		}
	}
	return out
}
