// SPDX-License-Identifier: MIT
package builder_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphworks/builder"
	"github.com/katalvlaran/graphworks/matrix"
)

// TestGenerate_CountsForThreeVertices checks the 3 + 3 + 1 split on 3 vertices
// and the single graph on 2 vertices.
func TestGenerate_CountsForThreeVertices(t *testing.T) {
	sink := builder.NewCountingSink()
	sum, err := builder.Generate(context.Background(), 3, sink)
	require.NoError(t, err)

	assert.Equal(t, []builder.Group{
		{Vertices: 2, Edges: 1},
		{Vertices: 3, Edges: 1},
		{Vertices: 3, Edges: 2},
		{Vertices: 3, Edges: 3},
	}, sink.Order)
	assert.Equal(t, 1, sink.Counts[builder.Group{Vertices: 2, Edges: 1}])
	assert.Equal(t, 3, sink.Counts[builder.Group{Vertices: 3, Edges: 1}])
	assert.Equal(t, 3, sink.Counts[builder.Group{Vertices: 3, Edges: 2}])
	assert.Equal(t, 1, sink.Counts[builder.Group{Vertices: 3, Edges: 3}])

	assert.Equal(t, 8, sum.Graphs)
	assert.Equal(t, 4, sum.Groups)
	assert.Equal(t, map[int]int{2: 1, 3: 7}, sum.ByVertexCount)
}

// TestGenerate_TotalsMatchPowerOfTwo checks 2^EdgeSlotCount(v) - 1 per vertex count.
func TestGenerate_TotalsMatchPowerOfTwo(t *testing.T) {
	sum, err := builder.Generate(context.Background(), 5, builder.NewCountingSink())
	require.NoError(t, err)
	for v := 2; v <= 5; v++ {
		assert.Equal(t, builder.ExpectedGraphs(v), int64(sum.ByVertexCount[v]), "v=%d", v)
	}
}

// TestGenerate_DistinctGraphs ensures no adjacency matrix repeats within a vertex count.
func TestGenerate_DistinctGraphs(t *testing.T) {
	seen := make(map[string]struct{})
	sink := builder.SinkFunc(func(v, e int, m *matrix.Dense) error {
		key := m.String()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate graph v=%d e=%d:\n%s", v, e, key)
		}
		seen[key] = struct{}{}
		return nil
	})
	sum, err := builder.Generate(context.Background(), 5, sink)
	require.NoError(t, err)
	assert.Len(t, seen, sum.Graphs)
}

// TestGenerate_TextOutput pins the text rendering for N=3.
func TestGenerate_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := builder.NewTextSink(&buf)
	_, err := builder.Generate(context.Background(), 3, sink)
	require.NoError(t, err)
	require.NoError(t, sink.Flush())

	want := strings.Join([]string{
		// v=2, e=1
		"2\n01\n10\n",
		// v=3, e=1: slots {2}=(2,1), {1}=(2,0), {0}=(1,0)
		"3\n000\n001\n010\n",
		"3\n001\n000\n100\n",
		"3\n010\n100\n000\n",
		// v=3, e=2: {1,2}, {0,2}, {0,1}
		"3\n001\n001\n110\n",
		"3\n010\n101\n010\n",
		"3\n011\n100\n100\n",
		// v=3, e=3
		"3\n011\n101\n110\n",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

// TestGenerate_ParallelSameOrder compares sequential and parallel output byte for byte.
func TestGenerate_ParallelSameOrder(t *testing.T) {
	var seq, par bytes.Buffer

	s1 := builder.NewTextSink(&seq)
	sum1, err := builder.Generate(context.Background(), 5, s1)
	require.NoError(t, err)
	require.NoError(t, s1.Flush())

	s2 := builder.NewTextSink(&par)
	sum2, err := builder.Generate(context.Background(), 5, s2, builder.WithWorkers(4))
	require.NoError(t, err)
	require.NoError(t, s2.Flush())

	assert.Equal(t, sum1, sum2)
	assert.Equal(t, seq.Len(), par.Len())
	assert.True(t, bytes.Equal(seq.Bytes(), par.Bytes()), "parallel output differs")
}

// TestGenerate_MinVertices skips smaller vertex counts.
func TestGenerate_MinVertices(t *testing.T) {
	sink := builder.NewCountingSink()
	sum, err := builder.Generate(context.Background(), 4, sink, builder.WithMinVertices(4))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{4: 63}, sum.ByVertexCount)
	assert.Equal(t, builder.Group{Vertices: 4, Edges: 1}, sink.Order[0])
}

// TestGenerate_InvalidVertexCount rejects N <= 2 and min > max without emitting.
func TestGenerate_InvalidVertexCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		sink := builder.NewCountingSink()
		_, err := builder.Generate(context.Background(), n, sink)
		assert.ErrorIs(t, err, builder.ErrInvalidVertexCount, "n=%d", n)
		assert.Empty(t, sink.Counts)
	}

	_, err := builder.Generate(context.Background(), 3, builder.NewCountingSink(), builder.WithMinVertices(4))
	assert.ErrorIs(t, err, builder.ErrInvalidVertexCount)

	_, err = builder.Generate(context.Background(), 3, nil)
	assert.ErrorIs(t, err, builder.ErrNilSink)
}

// TestGenerate_SinkError stops at the first sink failure, sequential and parallel.
func TestGenerate_SinkError(t *testing.T) {
	boom := errors.New("sink full")
	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			n := 0
			sink := builder.SinkFunc(func(int, int, *matrix.Dense) error {
				n++
				if n == 5 {
					return boom
				}
				return nil
			})
			sum, err := builder.Generate(context.Background(), 5, sink, builder.WithWorkers(workers))
			require.ErrorIs(t, err, boom)
			assert.Equal(t, 5, n)
			// v=2 (1 graph) and v=3,e=1 (3 graphs) completed before the failure.
			assert.Equal(t, 2, sum.Groups)
			assert.Equal(t, 4, sum.Graphs)
		})
	}
}

// TestGenerate_Cancelled returns the context error.
func TestGenerate_Cancelled(t *testing.T) {
	for _, workers := range []int{1, 2} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			n := 0
			sink := builder.SinkFunc(func(int, int, *matrix.Dense) error {
				n++
				if n == 10 {
					cancel()
				}
				return nil
			})
			_, err := builder.Generate(ctx, 6, sink, builder.WithWorkers(workers))
			require.ErrorIs(t, err, context.Canceled)
			assert.Less(t, n, int(builder.ExpectedGraphs(6)))
		})
	}
}

// TestGenerate_Metrics checks the Prometheus counters after a run.
func TestGenerate_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := builder.NewMetrics(reg)

	_, err := builder.Generate(context.Background(), 4, builder.NewCountingSink(), builder.WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.GraphsGenerated.WithLabelValues("2")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.GraphsGenerated.WithLabelValues("3")))
	assert.Equal(t, float64(63), testutil.ToFloat64(m.GraphsGenerated.WithLabelValues("4")))
	assert.Equal(t, float64(1+3+6), testutil.ToFloat64(m.GroupsCompleted))
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.RunDuration), float64(0))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

// TestGenerate_Logging emits one line per group plus bookends.
func TestGenerate_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(log.NewSyncWriter(&buf))

	_, err := builder.Generate(context.Background(), 3, builder.NewCountingSink(), builder.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="generating graphs"`)
	assert.Contains(t, out, `msg="edge combinations complete" vertices=3 edges=2 graphs=3`)
	assert.Contains(t, out, `msg="vertex count complete" vertices=3 graphs=7`)
	assert.Equal(t, 1+4+2, strings.Count(out, "\n"))
}

// TestOptions_PanicOnMeaninglessValues locks in option validation.
func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { builder.WithWorkers(0) })
	assert.Panics(t, func() { builder.WithMinVertices(1) })
	assert.Panics(t, func() { builder.WithMetrics(nil) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}

// TestGroupsAndExpected covers the planning helpers.
func TestGroupsAndExpected(t *testing.T) {
	assert.Len(t, builder.Groups(2, 4), 1+3+6)
	assert.Nil(t, builder.Groups(5, 4))
	assert.Equal(t, builder.Groups(2, 3), builder.Groups(0, 3))

	assert.Equal(t, int64(1), builder.ExpectedGraphs(2))
	assert.Equal(t, int64(7), builder.ExpectedGraphs(3))
	assert.Equal(t, int64(1<<21-1), builder.ExpectedGraphs(7))
	assert.Equal(t, int64(-1), builder.ExpectedGraphs(12))
}
