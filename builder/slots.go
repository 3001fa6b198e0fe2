// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// slots.go — canonical numbering of edge slots.
//
// For v vertices the EdgeSlotCount(v) unordered pairs are numbered
// column-major over the strict lower triangle:
//
//	column c = 0..v-1, row r = c+1..v-1
//
//	v = 4:   c=0: (1,0)=0 (2,0)=1 (3,0)=2
//	         c=1: (2,1)=3 (3,1)=4
//	         c=2: (3,2)=5
//
// The materializer writes cells in exactly this order, so an ordinal and a
// matrix cell always agree.

package builder

import "github.com/katalvlaran/graphworks/core"

// Ordinal returns the edge-slot number of the unordered pair {i, j} on v
// vertices.
//
// Errors: ErrBadPair if i == j or either index is outside [0, v).
// Complexity: O(1).
func Ordinal(v, i, j int) (int, error) {
	if i < 0 || j < 0 || i >= v || j >= v || i == j {
		return 0, builderErrorf(MethodOrdinal, ErrBadPair, "v=%d pair (%d,%d)", v, i, j)
	}
	r, c := i, j
	if r < c {
		r, c = c, r
	}

	// Slots in columns 0..c-1 hold (v-1) + (v-2) + ... + (v-c) pairs.
	return c*(v-1) - c*(c-1)/2 + (r - c - 1), nil
}

// Pair returns the (row, column) cell, row > column, of edge slot ord on v
// vertices. It is the inverse of Ordinal.
//
// Errors: ErrBadCombination if ord is outside [0, EdgeSlotCount(v)).
// Complexity: O(v).
func Pair(v, ord int) (row, col int, err error) {
	if ord < 0 || ord >= core.EdgeSlotCount(v) {
		return 0, 0, builderErrorf(MethodPair, ErrBadCombination, "v=%d ordinal %d", v, ord)
	}
	for col = 0; col < v; col++ {
		height := v - 1 - col // slots in this column
		if ord < height {
			return col + 1 + ord, col, nil
		}
		ord -= height
	}

	// Unreachable: the range check above bounds ord.
	return 0, 0, builderErrorf(MethodPair, ErrBadCombination, "v=%d", v)
}
