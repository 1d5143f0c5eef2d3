// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// options.go - functional options for the builder package.
//
// Option constructors panic on meaningless inputs; constructors never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDirection selects how links are stored as sent pairs.
func WithDirection(d Direction) BuilderOption {
	return func(c *builderConfig) {
		c.direction = d
	}
}

// WithEmailIDs sets the ID scheme to EmailIDFn(domain).
func WithEmailIDs(domain string) BuilderOption {
	return WithIDScheme(EmailIDFn(domain))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}
