// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It produces a slice of edges forming the MST of a *core.Graph edge list.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphworks/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil.
//   - ErrDisconnected  : if the edges cannot connect all vertexCount vertices.
//
// Steps:
//  1. Validate graph != nil. If vertexCount <= 1 or there are no edges, return an empty
//     tree, matching Prim.
//  2. Collect all edges, skipping self-loops.
//  3. Sort edges by ascending weight (sort.SliceStable keeps list order for equal weights).
//  4. Initialize parent[] and rank[] for vertices 0..vertexCount-1.
//  5. For each sorted edge (u,v), if find(u) != find(v), union and include the edge.
//  6. Stop at vertexCount-1 edges. Fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.WeightedEdge, int64, error) {
	// 1. Validate and handle the trivial cases.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	numVerts := graph.VertexCount()
	if numVerts <= 1 || graph.Size() == 0 {
		return []core.WeightedEdge{}, 0, nil
	}

	// 2. Collect non-loop edges; Edges() already returns a private copy.
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.Loop() {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].W < edges[j].W
	})

	// 4. Disjoint-set forest over dense vertex ids.
	parent := make([]int, numVerts)
	rank := make([]int, numVerts)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 5. Build the tree.
	var (
		mst         = make([]core.WeightedEdge, 0, numVerts-1)
		totalWeight int64
	)
	for _, e := range edges {
		if !union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.W
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 6. A spanning tree has exactly |V|-1 edges.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
