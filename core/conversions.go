// SPDX-License-Identifier: MIT
//
// File: conversions.go
// Role: build an edge-list Graph from a square weight matrix.

package core

import "fmt"

// FromWeights builds a Graph from a square weight matrix.
//
// The matrix is walked row by row (row j, column i). A cell becomes the edge
// (u=i, v=j, w=weights[j][i]) when i >= j and the value is non-zero, so only
// the upper triangle and the diagonal are read; the lower triangle is assumed
// to mirror it and is ignored. Zero means "no edge".
//
// Errors:
//   - ErrNonSquare if any row length differs from len(weights).
//
// Complexity: O(V²) time, O(E) memory.
func FromWeights(weights [][]int64) (*Graph, error) {
	n := len(weights)
	for j, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", j, len(row), n, ErrNonSquare)
		}
	}

	var edges []WeightedEdge
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			if w := weights[j][i]; w != 0 {
				edges = append(edges, NewWeightedEdge(i, j, w))
			}
		}
	}

	return &Graph{vertexCount: n, edges: edges}, nil
}
