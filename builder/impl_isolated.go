// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// Isolated returns a Constructor that adds n vertices with no edges,
// each a singleton team.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}

		return addVertices(g, cfg, MethodIsolated, n)
	}
}
