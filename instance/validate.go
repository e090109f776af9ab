// SPDX-License-Identifier: MIT

package instance

import "fmt"

// validateWeights performs the full structural check of a weight matrix:
//   - non-nil, square, n ≥ 1,
//   - zero diagonal,
//   - no negative entries,
//   - symmetry.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateWeights(w [][]int) (int, error) {
	// Stage 1: shape.
	if w == nil {
		return 0, ErrNilMatrix
	}
	n := len(w)
	if n == 0 {
		return 0, ErrNonSquare
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(w[i]) != n {
			return 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(w[i]), n, ErrNonSquare)
		}
	}

	// Stage 2: diagonal.
	for i = 0; i < n; i++ {
		if w[i][i] != 0 {
			return 0, fmt.Errorf("w[%d][%d]=%d: %w", i, i, w[i][i], ErrNonZeroDiagonal)
		}
	}

	// Stage 3: sign and symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w[i][j] < 0 || w[j][i] < 0 {
				return 0, fmt.Errorf("w[%d][%d]=%d: %w", i, j, w[i][j], ErrNegativeWeight)
			}
			if w[i][j] != w[j][i] {
				return 0, fmt.Errorf("w[%d][%d]=%d, w[%d][%d]=%d: %w", i, j, w[i][j], j, i, w[j][i], ErrAsymmetry)
			}
		}
	}

	return n, nil
}
