package builder

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics recorded by Generate.
type Metrics struct {
	GraphsGenerated *prometheus.CounterVec
	GroupsCompleted prometheus.Counter
	RunDuration     prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the provided registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	graphsGenerated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "graphworks_graphs_generated_total",
		Help: "Total graphs generated, by vertex count",
	}, []string{"vertices"})

	groupsCompleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graphworks_generation_groups_completed_total",
		Help: "Total (vertex count, edge count) groups fully enumerated",
	})

	runDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "graphworks_generation_duration_seconds",
		Help: "Wall time of the last Generate call",
	})

	reg.MustRegister(graphsGenerated, groupsCompleted, runDuration)

	return &Metrics{
		GraphsGenerated: graphsGenerated,
		GroupsCompleted: groupsCompleted,
		RunDuration:     runDuration,
	}
}
