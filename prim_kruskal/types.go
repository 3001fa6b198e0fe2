// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphworks/core"
)

// ErrInvalidGraph indicates that no graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: nil graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Prim reports it as soon as an
// iteration finds no edge leaving the tree.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow the tree set by a full edge scan).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Prim).
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(V·E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodPrim.
// Complexity: O(1).
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// NewOptions returns DefaultOptions with opts applied in order.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodPrim:    calls Prim(graph).
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.WeightedEdge — tree edges in selection order.
//	int64               — total weight of the tree.
//	error               — non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.WeightedEdge, int64, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(graph)
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return nil, 0, fmt.Errorf("%q: %w", opts.Method, ErrUnknownMethod)
	}
}
