// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// impl_star.go - Star(n): hub index 0 with n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Links 0–i for i=1..n-1.
//
// The hub is a connector iff n ≥ 3.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// Star returns a Constructor that builds a star whose hub is cfg.idFn(0).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodStar, i-1, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
