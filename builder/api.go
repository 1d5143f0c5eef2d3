// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// api.go - public entry points.
//
// Contract:
//   - BuildGraph creates g, resolves cfg, runs cons in order.
//   - Constructors validate first and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order. The first
// constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Scoped runs c with every vertex ID prefixed by prefix, so that several
// topologies built from index 0 do not collide.
func Scoped(prefix string, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s(%q): nil constructor: %w", MethodScoped, prefix, ErrConstructFailed)
		}
		inner := cfg.idFn
		cfg.idFn = func(i int) string { return prefix + inner(i) }

		return c(g, cfg)
	}
}
