// Package graphworks computes minimum spanning trees of weighted graphs and
// exhaustively enumerates every labeled simple graph up to N vertices.
//
// What is graphworks?
//
//	A small toolkit built around one combinatorial engine:
//		• combin:       reverse-colex k-combination odometer (O(k) state, no subset lists)
//		• builder:      edge-slot numbering, adjacency-matrix materializer, generation driver
//		• core:         WeightedEdge / Graph edge list + weight-matrix loader
//		• matrix:       int64 Dense matrices and their plain-text formats
//		• prim_kruskal: Prim (quadratic scan) and Kruskal (union-find) MSTs
//		• cmd/graphworks: the command line (mst, generate, combinations, version)
//
// Data flow:
//
//	generate:  builder.Generate → combin.Enumerator → builder.Materialize → Sink (file)
//	mst:       input.txt → matrix.Read → core.FromWeights → prim_kruskal.Prim → presenter
//
// Graph counts grow as 2^(v(v-1)/2) - 1 per vertex count v:
//
//	v=3: 7    v=4: 63    v=5: 1023    v=6: 32767    v=7: 2097151
//
//	go install github.com/katalvlaran/graphworks/cmd/graphworks@latest
package graphworks
