// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// generate.go — exhaustive generation of labeled simple graphs.
//
// For every vertex count v in [min, N] and every edge count e in
// [1, EdgeSlotCount(v)], Generate enumerates the e-combinations of v's edge
// slots in reverse colex order and hands each materialized adjacency matrix
// to a Sink. Groups are emitted strictly in (v, e) order whatever the worker
// count.

package builder

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphworks/combin"
	"github.com/katalvlaran/graphworks/core"
	"github.com/katalvlaran/graphworks/matrix"
)

// Summary reports what a Generate call emitted.
type Summary struct {
	// Graphs is the total number of graphs emitted.
	Graphs int
	// Groups is the number of fully enumerated (v, e) groups.
	Groups int
	// ByVertexCount maps a vertex count to its number of graphs.
	ByVertexCount map[int]int
}

// Groups lists the (v, e) groups for vertex counts minV..maxV in generation
// order. It returns nil when minV > maxV.
// Complexity: O(maxV²).
func Groups(minV, maxV int) []Group {
	if minV < MinGraphVertices {
		minV = MinGraphVertices
	}
	var out []Group
	for v := minV; v <= maxV; v++ {
		for e := 1; e <= core.EdgeSlotCount(v); e++ {
			out = append(out, Group{Vertices: v, Edges: e})
		}
	}

	return out
}

// ExpectedGraphs returns 2^EdgeSlotCount(v) - 1, the number of non-empty
// labeled simple graphs on v vertices, or -1 if it does not fit in an int64.
func ExpectedGraphs(v int) int64 {
	slots := core.EdgeSlotCount(v)
	if slots > 62 {
		return -1
	}

	return int64(1)<<slots - 1
}

// Generate emits every non-empty labeled simple graph on MinVertices..maxVertices
// vertices to sink.
//
// Steps:
//  1. Resolve options; validate maxVertices > 2, min <= max and sink != nil.
//  2. Build the ordered list of (v, e) groups.
//  3. Enumerate each group with a fresh combin.Enumerator over
//     EdgeSlotCount(v) slots choosing e, materialize, Emit.
//  4. After each group: update Summary, metrics and logs.
//
// With WithWorkers(n > 1) groups are enumerated concurrently, each on its own
// Enumerator, and streamed to the sink in order through per-group channels.
//
// Errors:
//   - ErrInvalidVertexCount, ErrNilSink before any work.
//   - the first error returned by sink.Emit.
//   - ctx.Err() if ctx is cancelled.
//
// On error the Summary covers only the groups completed before it.
// Complexity: O(Σ_v 2^EdgeSlotCount(v) · v²).
func Generate(ctx context.Context, maxVertices int, sink Sink, opts ...Option) (Summary, error) {
	cfg := newBuilderConfig(opts...)
	sum := Summary{ByVertexCount: make(map[int]int)}

	if maxVertices < MinGenerateMaxVertices || cfg.minVertices > maxVertices {
		return sum, builderErrorf(MethodGenerate, ErrInvalidVertexCount,
			"min=%d max=%d", cfg.minVertices, maxVertices)
	}
	if sink == nil {
		return sum, builderErrorf(MethodGenerate, ErrNilSink, "max=%d", maxVertices)
	}

	groups := Groups(cfg.minVertices, maxVertices)
	level.Info(cfg.logger).Log("msg", "generating graphs",
		"min_vertices", cfg.minVertices, "max_vertices", maxVertices,
		"groups", len(groups), "workers", cfg.workers)

	start := time.Now()
	var err error
	if cfg.workers > 1 {
		err = generateParallel(ctx, cfg, groups, sink, &sum)
	} else {
		err = generateSequential(ctx, cfg, groups, sink, &sum)
	}
	if cfg.metrics != nil {
		cfg.metrics.RunDuration.Set(time.Since(start).Seconds())
	}

	return sum, err
}

// generateSequential enumerates every group on the calling goroutine,
// reusing one matrix per vertex count.
func generateSequential(ctx context.Context, cfg builderConfig, groups []Group, sink Sink, sum *Summary) error {
	var m *matrix.Dense
	for _, g := range groups {
		if m == nil || m.Rows() != g.Vertices {
			var err error
			if m, err = matrix.NewSquare(g.Vertices); err != nil {
				return err
			}
		}

		e, err := combin.New(core.EdgeSlotCount(g.Vertices), g.Edges)
		if err != nil {
			return err
		}
		for e.Next() {
			if err = ctx.Err(); err != nil {
				return err
			}
			if err = MaterializeInto(m, e.Combination()); err != nil {
				return err
			}
			if err = sink.Emit(g.Vertices, g.Edges, m); err != nil {
				return err
			}
		}
		cfg.recordGroup(sum, g, e.Emitted())
	}

	return nil
}

// generateParallel runs up to cfg.workers group producers at once. Producers
// are launched in group order, so the group the consumer is draining has
// always been started; later groups block once their channel buffer fills.
func generateParallel(ctx context.Context, cfg builderConfig, groups []Group, sink Sink, sum *Summary) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)

	chans := make([]chan *matrix.Dense, len(groups))
	for i := range chans {
		chans[i] = make(chan *matrix.Dense, groupBuffer)
	}

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, g := range groups {
			if gctx.Err() != nil {
				return
			}
			out := chans[i]
			eg.Go(func() error { return produceGroup(gctx, g, out) })
		}
	}()

	drainErr := drainGroups(gctx, cfg, groups, chans, sink, sum)

	// Stop producers that are still running, then collect their result.
	cancel()
	<-launched
	waitErr := eg.Wait()

	switch {
	case waitErr != nil && !isContextErr(waitErr):
		return waitErr
	case drainErr != nil:
		return drainErr
	default:
		return waitErr
	}
}

// drainGroups forwards each group's matrices to sink in group order.
func drainGroups(ctx context.Context, cfg builderConfig, groups []Group, chans []chan *matrix.Dense, sink Sink, sum *Summary) error {
	for i, g := range groups {
		count := 0
	group:
		for {
			select {
			case m, ok := <-chans[i]:
				if !ok {
					break group
				}
				if err := sink.Emit(g.Vertices, g.Edges, m); err != nil {
					return err
				}
				count++
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		// A channel also closes when its producer gave up; only count
		// groups that ran to completion.
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg.recordGroup(sum, g, count)
	}

	return nil
}

// produceGroup enumerates one group into out, closing it when done.
func produceGroup(ctx context.Context, g Group, out chan<- *matrix.Dense) error {
	defer close(out)

	e, err := combin.New(core.EdgeSlotCount(g.Vertices), g.Edges)
	if err != nil {
		return err
	}
	for e.Next() {
		m, err := Materialize(g.Vertices, e.Combination())
		if err != nil {
			return err
		}
		select {
		case out <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// recordGroup updates the summary, metrics and logs after group g emitted
// count graphs.
func (cfg builderConfig) recordGroup(sum *Summary, g Group, count int) {
	sum.Graphs += count
	sum.Groups++
	sum.ByVertexCount[g.Vertices] += count

	if cfg.metrics != nil {
		cfg.metrics.GroupsCompleted.Inc()
		cfg.metrics.GraphsGenerated.WithLabelValues(strconv.Itoa(g.Vertices)).Add(float64(count))
	}

	level.Debug(cfg.logger).Log("msg", "edge combinations complete",
		"vertices", g.Vertices, "edges", g.Edges, "graphs", count)
	if g.Edges == core.EdgeSlotCount(g.Vertices) {
		level.Info(cfg.logger).Log("msg", "vertex count complete",
			"vertices", g.Vertices, "graphs", sum.ByVertexCount[g.Vertices])
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
