// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// sink.go — consumers of generated graphs.

package builder

import (
	"bufio"
	"io"

	"github.com/katalvlaran/graphworks/matrix"
)

// Sink receives every generated graph in generation order.
//
// The matrix passed to Emit may be reused by the caller after Emit returns;
// a Sink that keeps it must Clone it. A non-nil error stops generation and is
// returned by Generate.
type Sink interface {
	Emit(v, e int, m *matrix.Dense) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(v, e int, m *matrix.Dense) error

// Emit calls f(v, e, m).
func (f SinkFunc) Emit(v, e int, m *matrix.Dense) error { return f(v, e, m) }

// TextSink writes graphs in the plain-text format of matrix.WriteBits to an
// io.Writer through a buffer. Call Flush when generation ends.
type TextSink struct {
	w   *bufio.Writer
	buf []byte
}

// NewTextSink wraps w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

// Emit renders m and writes it.
func (s *TextSink) Emit(_, _ int, m *matrix.Dense) error {
	var err error
	s.buf, err = matrix.AppendBits(s.buf[:0], m)
	if err != nil {
		return err
	}
	_, err = s.w.Write(s.buf)

	return err
}

// Flush writes any buffered data to the underlying writer.
func (s *TextSink) Flush() error { return s.w.Flush() }

// Group identifies one (vertex count, edge count) enumeration.
type Group struct {
	Vertices int
	Edges    int
}

// CountingSink discards matrices and counts them per Group.
type CountingSink struct {
	Counts map[Group]int
	Order  []Group // groups in the order they were first seen
}

// NewCountingSink returns an empty CountingSink.
func NewCountingSink() *CountingSink {
	return &CountingSink{Counts: make(map[Group]int)}
}

// Emit counts one graph.
func (s *CountingSink) Emit(v, e int, _ *matrix.Dense) error {
	g := Group{Vertices: v, Edges: e}
	if _, ok := s.Counts[g]; !ok {
		s.Order = append(s.Order, g)
	}
	s.Counts[g]++

	return nil
}
