// SPDX-License-Identifier: MIT
// Package: commgraph/builder
//
// impl_path.go - Path(n): a chain of n people, each writing to the next.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Links (i-1)–i for i=1..n-1 in increasing order.
//
// Every interior vertex of a path is a connector; the endpoints are not.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, MethodPath, i-1, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
