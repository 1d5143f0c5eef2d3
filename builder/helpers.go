// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/commgraph/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// link stores the k-th undirected link between indices i and j according to
// cfg.direction.
func link(g *core.Graph, cfg builderConfig, method string, k, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)

	var pairs [][2]string
	switch cfg.direction {
	case Backward:
		pairs = [][2]string{{v, u}}
	case Both:
		pairs = [][2]string{{u, v}, {v, u}}
	case Alternate:
		if k%2 == 1 {
			pairs = [][2]string{{v, u}}
		} else {
			pairs = [][2]string{{u, v}}
		}
	default:
		pairs = [][2]string{{u, v}}
	}

	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, p[0], p[1], err)
		}
	}

	return nil
}
