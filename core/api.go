// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostic getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count vertices with empty sent and received buckets, and self-loops.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}
	for id := range g.vertices {
		if len(g.sent[id]) == 0 && len(g.received[id]) == 0 {
			stats.IsolatedCount++
		}
		if _, loop := g.sent[id][id]; loop {
			stats.SelfLoopCount++
		}
	}

	return stats
}
