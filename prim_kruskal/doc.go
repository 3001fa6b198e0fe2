// Package prim_kruskal computes Minimum Spanning Trees over the edge-list
// *core.Graph: Prim’s algorithm as the primary engine and Kruskal’s algorithm
// as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph) ([]core.WeightedEdge, int64, error)
//
//   - Strategy: keep a saturated vertex set vT, seeded with the first endpoint of the first edge.
//     Each iteration scans the full edge list and takes the cheapest edge with exactly one endpoint
//     in vT. Ties go to the edge that appears first in the list. Self-loops are never selected.
//
//   - Complexity: Time O(V·E), Space O(V). No heap; suited to the small dense graphs read
//     from adjacency matrices.
//
//   - Kruskal(g *core.Graph) ([]core.WeightedEdge, int64, error)
//
//   - Strategy: stable-sort all non-loop edges by weight, then merge components with a
//     disjoint-set forest until |V|−1 edges are chosen.
//
//   - Complexity: Time O(E log E + α(V)·E), Space O(V + E).
//
// Both return the same total weight on any connected graph; the edge sets may
// differ when weights tie.
//
// Trivial inputs
//
//	A graph with vertexCount <= 1 or no edges yields an empty tree, weight 0, nil error.
//
// Error Conditions
//
//	- ErrInvalidGraph  — graph is nil.
//	- ErrDisconnected  — no spanning tree covers all vertices (including isolated vertices).
//	- ErrUnknownMethod — Compute was given a Method other than MethodPrim / MethodKruskal.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
