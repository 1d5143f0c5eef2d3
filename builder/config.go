// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn      = DefaultIDFn ("0","1","2",...)
//   - rng       = nil (pure unless seeded)
//   - direction = Forward

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn      func(int) string
	rng       *rand.Rand
	direction Direction
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		direction: Forward,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
