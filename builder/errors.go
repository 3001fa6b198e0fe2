// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps the
//     sentinel reachable through %w.
//   • Generation never panics at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a vertex count below 2 was passed to a
// materializer; a graph with fewer vertices has no edge slots.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidVertexCount indicates Generate was asked for a maximum vertex
// count of 2 or less, or a minimum above the maximum. No work is done.
var ErrInvalidVertexCount = errors.New("builder: invalid vertex count")

// ErrBadCombination indicates an edge-slot combination that is not strictly
// increasing or refers to a slot outside [0, EdgeSlotCount(v)).
var ErrBadCombination = errors.New("builder: invalid edge-slot combination")

// ErrBadPair indicates a vertex pair that is a loop or lies outside [0, v).
var ErrBadPair = errors.New("builder: invalid vertex pair")

// ErrNilSink indicates Generate was called without a Sink.
var ErrNilSink = errors.New("builder: nil sink")

// builderErrorf wraps err with the given method context:
// "<method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
