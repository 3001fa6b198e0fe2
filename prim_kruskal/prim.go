// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from the first endpoint of the first edge, scanning the whole edge list
// on every iteration; no priority queue is involved.
package prim_kruskal

import (
	"github.com/katalvlaran/graphworks/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if some iteration finds no edge with exactly one endpoint in the tree.
//
// Steps:
//  1. Validate graph != nil. If vertexCount <= 1 or there are no edges, return an empty tree.
//  2. Seed the saturated set vT with edges[0].U.
//  3. Until the tree has vertexCount-1 edges:
//     a. Scan every edge in list order. An edge is a candidate iff exactly one endpoint
//     is in vT; self-loops never are.
//     b. Keep the candidate with the strictly smallest weight, so the first of equal
//     minima wins.
//     c. No candidate → ErrDisconnected. Otherwise append it to T, add its outside
//     endpoint to vT and accumulate its weight.
//  4. Return T in selection order and its total weight.
//
// Complexity: O(V·E) time, O(V) memory.
func Prim(graph *core.Graph) ([]core.WeightedEdge, int64, error) {
	// 1. Validate and handle the trivial cases.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	m := graph.Size()
	if n <= 1 || m == 0 {
		return []core.WeightedEdge{}, 0, nil
	}

	// 2. Seed vT.
	inTree := make([]bool, n)
	inTree[graph.Edge(0).U] = true

	tree := make([]core.WeightedEdge, 0, n-1)
	var totalWeight int64

	// 3. One full scan per tree edge.
	for len(tree) < n-1 {
		best := -1
		var bestW int64
		for i := 0; i < m; i++ {
			e := graph.Edge(i)
			if inTree[e.U] == inTree[e.V] {
				// Both inside (cycle or loop) or both outside (not adjacent yet).
				continue
			}
			if best < 0 || e.W < bestW {
				best, bestW = i, e.W
			}
		}
		if best < 0 {
			return nil, 0, ErrDisconnected
		}

		e := graph.Edge(best)
		inTree[e.U] = true
		inTree[e.V] = true
		tree = append(tree, e)
		totalWeight += e.W
	}

	// 4. Done.
	return tree, totalWeight, nil
}
