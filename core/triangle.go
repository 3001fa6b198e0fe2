// SPDX-License-Identifier: MIT
//
// File: triangle.go
// Role: closed-form edge-slot counts for simple undirected graphs.

package core

// TriangleNumber returns k(k+1)/2, the k-th triangle number.
// Non-positive k yields 0.
// Complexity: O(1).
func TriangleNumber(k int) int {
	if k <= 0 {
		return 0
	}

	return k * (k + 1) / 2
}

// EdgeSlotCount returns the number of distinct undirected vertex pairs on v
// vertices, v(v-1)/2. It is the universe size the combination enumerator
// works over when generating graphs on v vertices.
// Complexity: O(1).
func EdgeSlotCount(v int) int { return TriangleNumber(v - 1) }
