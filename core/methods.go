// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over a Graph.

package core

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.vertexCount }

// Size returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []WeightedEdge {
	out := make([]WeightedEdge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the i-th edge. It panics if i is out of range, like a slice index.
// Complexity: O(1).
func (g *Graph) Edge(i int) WeightedEdge { return g.edges[i] }

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.edges {
		total += e.W
	}

	return total
}

// HasEdge reports whether an edge joins u and v, in either orientation.
// Complexity: O(E).
func (g *Graph) HasEdge(u, v int) bool {
	for _, e := range g.edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return true
		}
	}

	return false
}

// Weights renders the graph back into a symmetric VertexCount×VertexCount
// weight matrix; absent edges are 0. Later edges overwrite earlier ones on
// the same pair.
// Complexity: O(V² + E).
func (g *Graph) Weights() [][]int64 {
	n := g.vertexCount
	flat := make([]int64, n*n)
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}
	for _, e := range g.edges {
		rows[e.U][e.V] = e.W
		rows[e.V][e.U] = e.W
	}

	return rows
}
