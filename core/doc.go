// Package core defines the weighted edge model shared by every algorithm in
// graphworks.
//
// A Graph is a vertex count plus an ordered list of WeightedEdge values.
// Vertices are the integers 0..VertexCount()-1; an edge is an unordered pair
// with an integer weight. The list is built once (NewGraph or FromWeights) and
// is read-only afterwards, so a *Graph may be shared freely between goroutines.
//
// Building from a weight matrix:
//
//	g, err := core.FromWeights([][]int64{
//		{0, 1, 4},
//		{1, 0, 2},
//		{4, 2, 0},
//	})
//	// g.Edges() == [<1, 0> weight[ 1 ], <2, 0> weight[ 4 ], <2, 1> weight[ 2 ]]
//
// Only cells on or above the diagonal are read; zero means "no edge".
//
// The package also hosts the triangle-number helpers used to size the
// edge-slot universe for graph generation:
//
//	TriangleNumber(k) = k(k+1)/2
//	EdgeSlotCount(v)  = TriangleNumber(v-1)
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph with vertexCount < 0.
//	ErrVertexOutOfRange    - edge endpoint outside [0, vertexCount).
//	ErrNonSquare           - FromWeights with a ragged matrix.
package core
