// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies of graph instances.
// Concurrency:
//   - Read lock on the source for the whole snapshot; no mutation of the source.

package core

// Clone returns a deep copy of the Graph: vertices, sent and received views.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for from, bucket := range g.sent {
		for to := range bucket {
			clone.addEdgeLocked(from, to)
		}
	}

	return clone
}
