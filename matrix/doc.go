// SPDX-License-Identifier: MIT
// Package matrix holds the integer matrices graphworks reads and writes.
//
// Dense is a flat, row-major int64 buffer whose bounds are fixed at
// allocation. It is used in two places:
//
//   - as the parsed form of a weight matrix file (Read), which core.FromWeights
//     turns into an edge list for the MST engine;
//   - as the adjacency matrix of a generated graph, rendered with WriteBits.
//
// Text formats:
//
//	Read:      "V" followed by V×V whitespace-separated integers.
//	WriteBits: "V\n", then V lines of '0'/'1', then an empty line.
//	Write:     "V\n", then V lines of space-separated integers (Read-compatible).
//
// Errors are package sentinels (ErrInvalidDimensions, ErrIndexOutOfBounds,
// ErrNonSquare, ErrBadShape, ErrSyntax, ErrTruncated, ErrNilMatrix); match
// them with errors.Is.
package matrix
