// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: WeightedEdge and Graph value types, sentinel errors, NewGraph.
// Policy:
//   - A Graph is built once and is read-only afterwards; no locks needed.
//   - Vertices are dense integers 0..VertexCount()-1.
//   - (u,v) and (v,u) name the same undirected edge; only one is stored.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph construction.
var (
	// ErrNegativeVertexCount indicates a Graph was requested with fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNonSquare indicates that a weight matrix has a row whose length
	// differs from the number of rows.
	ErrNonSquare = errors.New("core: weight matrix is not square")
)

// WeightedEdge is one undirected edge between vertices U and V with weight W.
//
// The type is a plain value: copying it is cheap and no method mutates it.
// Self-loops (U == V) are representable because the matrix loader keeps
// non-zero diagonal cells; MST algorithms never select them.
type WeightedEdge struct {
	// U is the first (unordered) endpoint.
	U int

	// V is the second (unordered) endpoint.
	V int

	// W is the integer weight of the edge.
	W int64
}

// NewWeightedEdge returns the edge (u, v, w).
// Complexity: O(1).
func NewWeightedEdge(u, v int, w int64) WeightedEdge {
	return WeightedEdge{U: u, V: v, W: w}
}

// Other returns the endpoint opposite to x.
// If x is not an endpoint, Other returns -1.
func (e WeightedEdge) Other(x int) int {
	switch x {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return -1
	}
}

// Loop reports whether the edge connects a vertex to itself.
func (e WeightedEdge) Loop() bool { return e.U == e.V }

// String renders the edge as "<u, v> weight[ w ]".
func (e WeightedEdge) String() string {
	return fmt.Sprintf("<%d, %d> weight[ %d ]", e.U, e.V, e.W)
}

// Graph is an undirected weighted graph stored as an ordered edge list.
//
// The order of edges is significant: algorithms that break ties by scan
// order (Prim) rely on it, so it is preserved exactly as supplied.
type Graph struct {
	vertexCount int            // number of vertices, ids 0..vertexCount-1
	edges       []WeightedEdge // insertion-ordered edge list
}

// NewGraph creates a Graph over vertexCount vertices holding the given edges
// in the given order.
//
// Errors:
//   - ErrNegativeVertexCount if vertexCount < 0.
//   - ErrVertexOutOfRange if any endpoint lies outside [0, vertexCount).
//
// Complexity: O(E) time, O(E) memory (edges are copied).
func NewGraph(vertexCount int, edges ...WeightedEdge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, fmt.Errorf("edge %d %s: %w", i, e, ErrVertexOutOfRange)
		}
	}

	// Copy so the caller cannot mutate our edge list afterwards.
	own := make([]WeightedEdge, len(edges))
	copy(own, edges)

	return &Graph{vertexCount: vertexCount, edges: own}, nil
}
