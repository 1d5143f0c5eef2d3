// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order over the undirected union of
// sent and received edges.
//
// What
//
//   - Explore vertices in non-decreasing distance from a start vertex.
//   - BFSResult carries Order, Depth and Parent; PathTo rebuilds a chain.
//   - WithExclude hides vertices, which is how removal checks are phrased
//     without copying the graph.
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds layers.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = distinct undirected pairs)
//
//   - Time:   O(V + E), plus the per-vertex sort done by NeighborIDs
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "alice@enron.com",
//	    bfs.WithContext(ctx),
//	    bfs.WithExclude("bob@enron.com"),
//	)
//	path, err := res.PathTo("carol@enron.com")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrStartExcluded        if the start vertex is excluded.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - ErrNoPath               from PathTo when dest was not reached.
package bfs
