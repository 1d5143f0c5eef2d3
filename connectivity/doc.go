// SPDX-License-Identifier: MIT
// Package connectivity finds teams (connected components) and connectors
// (articulation points) of a core.Graph, treating every sent or received
// pair as an undirected link.
//
// What
//
//   - Analyze runs one iterative depth-first search per unvisited vertex.
//     Each top-level run yields exactly one component.
//   - The search keeps an explicit frame stack (vertex plus neighbor cursor)
//     and an explicit parent map, so depth is bounded by memory rather than
//     by the goroutine stack.
//   - low[u] is folded once u has no unvisited neighbor left:
//     low[u] = min(disc[u], disc[v] for non-parent non-child neighbors v,
//     low[c] for DFS children c).
//   - A non-root u is a connector iff some child c has low[c] >= disc[u];
//     a root is a connector iff it has more than one child.
//
// Determinism
//
//	Members of every component are sorted, components are ordered by their
//	smallest member and connectors are sorted. The Result therefore does not
//	depend on neighbor or root-scan order, which WithNeighborOrder,
//	WithVertexOrder and WithShuffle can vary.
//
// Verification
//
//	Verify recomputes both answers by brute force (one BFS per removed
//	vertex). It is quadratic and meant for tests and small graphs.
//
// Complexity (V = |Vertices|, E = distinct undirected pairs)
//
//   - Analyze: Time O(V + E) plus neighbor sorting, Memory O(V + E)
//   - Verify:  Time O(V·(V + E))
//
// Errors
//
//   - ErrGraphNil      if the graph pointer is nil.
//   - ErrNeighbors     if a neighbor lookup fails (a programming error).
//   - ErrVerifyFailed  from Verify on the first mismatch.
package connectivity
