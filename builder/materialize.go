// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// materialize.go — edge-slot combination ⇄ adjacency matrix.
//
// Contract:
//   • The produced matrix is v×v, symmetric, 0/1, with a zero diagonal.
//   • Cell (r,c), r>c, is 1 iff Ordinal(v,r,c) is in the combination.
//   • Ordinals(Materialize(v, combo)) == combo for every valid combo.

package builder

import (
	"github.com/katalvlaran/graphworks/core"
	"github.com/katalvlaran/graphworks/matrix"
)

// Materialize returns a new v×v adjacency matrix with the edge slots listed
// in combo switched on.
//
// Errors:
//   - ErrTooFewVertices if v < MinGraphVertices.
//   - ErrBadCombination if combo is not strictly increasing or holds a slot
//     outside [0, EdgeSlotCount(v)).
//
// Complexity: O(v²) time and memory.
func Materialize(v int, combo []int) (*matrix.Dense, error) {
	if v < MinGraphVertices {
		return nil, builderErrorf(MethodMaterialize, ErrTooFewVertices, "v=%d", v)
	}
	m, err := matrix.NewSquare(v)
	if err != nil {
		return nil, err
	}
	if err = MaterializeInto(m, combo); err != nil {
		return nil, err
	}

	return m, nil
}

// MaterializeInto overwrites dst, a square matrix, with the adjacency matrix
// for combo. The vertex count is dst.Rows(). Reusing dst across calls avoids
// one allocation per generated graph.
//
// Errors: as Materialize; dst is left unchanged on error.
// Complexity: O(v²).
func MaterializeInto(dst *matrix.Dense, combo []int) error {
	if dst == nil {
		return builderErrorf(MethodMaterialize, matrix.ErrNilMatrix, "dst")
	}
	if !dst.Square() {
		return builderErrorf(MethodMaterialize, matrix.ErrNonSquare, "dst %dx%d", dst.Rows(), dst.Cols())
	}
	v := dst.Rows()
	if v < MinGraphVertices {
		return builderErrorf(MethodMaterialize, ErrTooFewVertices, "v=%d", v)
	}
	if err := validateCombination(v, combo); err != nil {
		return err
	}

	// Walk slots in canonical order; k is the next combination entry to match.
	ord, k := 0, 0
	for c := 0; c < v; c++ {
		_ = dst.Set(c, c, 0)
		for r := c + 1; r < v; r++ {
			var bit int64
			if k < len(combo) && combo[k] == ord {
				bit = 1
				k++
			}
			// Bounds are guaranteed by the loop limits.
			_ = dst.SetSymmetric(r, c, bit)
			ord++
		}
	}

	return nil
}

// Ordinals recovers the edge-slot combination of a square adjacency matrix:
// the sorted ordinals of every non-zero cell below the diagonal.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(v²).
func Ordinals(m *matrix.Dense) ([]int, error) {
	if m == nil {
		return nil, builderErrorf(MethodOrdinals, matrix.ErrNilMatrix, "m")
	}
	if !m.Square() {
		return nil, builderErrorf(MethodOrdinals, matrix.ErrNonSquare, "%dx%d", m.Rows(), m.Cols())
	}

	v := m.Rows()
	out := make([]int, 0, core.EdgeSlotCount(v))
	ord := 0
	for c := 0; c < v; c++ {
		for r := c + 1; r < v; r++ {
			if x, _ := m.At(r, c); x != 0 {
				out = append(out, ord)
			}
			ord++
		}
	}

	return out, nil
}

// validateCombination checks 0 <= combo[0] < ... < combo[k-1] < EdgeSlotCount(v).
func validateCombination(v int, combo []int) error {
	slots := core.EdgeSlotCount(v)
	prev := -1
	for i, x := range combo {
		if x <= prev || x >= slots {
			return builderErrorf(MethodMaterialize, ErrBadCombination,
				"v=%d slot[%d]=%d (universe %d)", v, i, x, slots)
		}
		prev = x
	}

	return nil
}
