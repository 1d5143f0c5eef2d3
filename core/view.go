// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// Without returns a new Graph with the named vertices and every edge touching
// them removed. Unknown IDs are ignored. The input graph is not mutated.
//
// connectivity.BruteForce removes candidate connectors with it.
//
// Complexity: O(V + E).
func (g *Graph) Without(ids ...string) *Graph {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		if _, skip := drop[id]; !skip {
			out.vertices[id] = struct{}{}
		}
	}
	for from, bucket := range g.sent {
		if _, skip := drop[from]; skip {
			continue
		}
		for to := range bucket {
			if _, skip := drop[to]; skip {
				continue
			}
			out.addEdgeLocked(from, to)
		}
	}

	return out
}
