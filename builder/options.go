// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// options.go — functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"github.com/go-kit/log"
)

// Option customizes Generate by mutating a builderConfig before work starts.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithWorkers sets how many (vertex count, edge count) groups may be
// enumerated concurrently. 1 (the default) runs everything on the calling
// goroutine. Output order is the same for every worker count.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithMinVertices starts generation at n vertices instead of 2.
// Panics if n < MinGraphVertices.
func WithMinVertices(n int) Option {
	if n < MinGraphVertices {
		panic("builder: WithMinVertices(n<2)")
	}
	return func(c *builderConfig) {
		c.minVertices = n
	}
}

// WithMetrics records generation counters into m.
// Panics on nil; omit the option to disable metrics.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("builder: WithMetrics(nil)")
	}
	return func(c *builderConfig) {
		c.metrics = m
	}
}

// WithLogger sends progress messages to l: one debug line per finished
// (vertex count, edge count) group and one info line per vertex count.
// Panics on nil; the default is a no-op logger.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
