// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// impl_cycle.go - Cycle(n): a ring with no connectors.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Links i–(i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, MethodCycle, i, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
