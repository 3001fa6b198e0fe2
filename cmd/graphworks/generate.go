package main

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/graphworks/builder"
)

type generateCmd struct {
	MaxVertices int    `short:"n" help:"Largest vertex count to generate; must be greater than 2."`
	MinVertices int    `help:"Smallest vertex count to generate." default:"2"`
	Output      string `short:"o" help:"Output file, replaced when generation succeeds." default:"generated_graphs.txt" type:"path"`
	Workers     int    `help:"Vertex/edge-count groups enumerated concurrently." default:"1" env:"GRAPHWORKS_WORKERS"`
	MetricsFile string `help:"Write Prometheus metrics to this file in textfile collector format." placeholder:"PATH" type:"path"`
}

// Validate rejects option values the builder would panic on.
func (c *generateCmd) Validate() error {
	if c.Workers < 1 {
		return errors.Errorf("--workers must be at least 1, got %d", c.Workers)
	}
	if c.MinVertices < builder.MinGraphVertices {
		return errors.Errorf("--min-vertices must be at least %d, got %d", builder.MinGraphVertices, c.MinVertices)
	}

	return nil
}

func (c *generateCmd) Run(rc *runContext) error {
	reg := prometheus.NewRegistry()
	metrics := builder.NewMetrics(reg)

	out, err := createAtomic(c.Output)
	if err != nil {
		return errors.Wrapf(err, "creating %s", c.Output)
	}
	defer out.Abort()

	sink := builder.NewTextSink(out)
	sum, err := builder.Generate(rc.ctx, c.MaxVertices, sink,
		builder.WithMinVertices(c.MinVertices),
		builder.WithWorkers(c.Workers),
		builder.WithMetrics(metrics),
		builder.WithLogger(rc.logger),
	)
	if err != nil {
		return errors.Wrap(err, "generating graphs")
	}
	if err := sink.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", c.Output)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", c.Output)
	}
	level.Info(rc.logger).Log("msg", "graphs written", "output", c.Output,
		"graphs", sum.Graphs, "groups", sum.Groups)

	if c.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(c.MetricsFile, reg); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", c.MetricsFile)
		}
	}

	return nil
}
