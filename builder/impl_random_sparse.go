// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run for i asc, j>i asc, so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// RandomSparse returns a Constructor that samples each unordered pair
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
					continue
				case p < MaxProbability && cfg.rng.Float64() >= p:
					continue
				}
				if err := link(g, cfg, MethodRandomSparse, k, i, j); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
