// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// impl_complete.go - Complete(n): everyone in touch with everyone.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Links i–j for 0 ≤ i < j < n in lexicographic (i,j) order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, MethodComplete, k, i, j); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
