// SPDX-License-Identifier: MIT
// Package: graphworks/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • workers     = DefaultWorkers (sequential)
//   • minVertices = MinGraphVertices
//   • metrics     = nil (disabled)
//   • logger      = log.NewNopLogger()

package builder

import (
	"github.com/go-kit/log"
)

// builderConfig aggregates all knobs used by Generate.
// It is passed by VALUE (immutable once resolved).
type builderConfig struct {
	workers     int
	minVertices int
	metrics     *Metrics
	logger      log.Logger
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order; later options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		workers:     DefaultWorkers,
		minVertices: MinGraphVertices,
		logger:      log.NewNopLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
