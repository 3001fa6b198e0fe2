// SPDX-License-Identifier: MIT
// Package builder turns edge-slot combinations into adjacency matrices and
// drives exhaustive generation of every labeled simple graph up to N vertices.
//
// Edge slots
//
// The EdgeSlotCount(v) = v(v-1)/2 unordered pairs of a v-vertex graph are
// numbered column-major over the strict lower triangle (Ordinal / Pair):
//
//	v = 4      c=0  c=1  c=2
//	  r=1       0
//	  r=2       1    3
//	  r=3       2    4    5
//
// Materializer
//
//	m, _ := builder.Materialize(4, []int{0, 3, 5}) // path 0-1-2-3
//	ords, _ := builder.Ordinals(m)                 // [0 3 5]
//
// Driver
//
// Generate walks v = 2..N and e = 1..EdgeSlotCount(v). For each (v, e) group
// it enumerates the e-subsets of v's slots with combin.Enumerator in reverse
// colex order and sends every materialized matrix to a Sink. Each vertex
// count therefore yields 2^EdgeSlotCount(v) - 1 graphs (the empty graph is
// skipped):
//
//	v=3:  e=1 → 3 graphs, e=2 → 3, e=3 → 1   (7 = 2^3 - 1)
//
// Sinks: TextSink writes the "V / rows of 0 and 1 / blank line" format,
// CountingSink only counts, SinkFunc adapts a closure.
//
// Options: WithWorkers (parallel groups, same output order), WithMinVertices,
// WithMetrics (Prometheus), WithLogger (go-kit).
//
// Errors: ErrTooFewVertices, ErrInvalidVertexCount, ErrBadCombination,
// ErrBadPair, ErrNilSink. Match with errors.Is.
package builder
