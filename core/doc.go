// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory communication graph that
// every other commgraph package builds on.
//
// The Graph keeps one vertex catalog and two directed adjacency views over it:
//
//	sent[from][to]     = struct{}{}   // from wrote to "to"
//	received[to][from] = struct{}{}   // the exact inverse of sent
//
// Both views are written in the same critical section, so the invariant
//
//	sent[x] contains y  ⇔  received[y] contains x
//
// holds at every point where a reader can observe the graph.
//
// Why a dedicated graph type?
//
//   - Set semantics: inserting (from,to) twice is a no-op; there are no edge IDs,
//     weights or multi-edges to manage.
//   - Additive lifecycle: vertices and edges are created during ingestion and never
//     removed in place. Views (Clone, Without) return fresh graphs.
//   - Deterministic reads: Vertices(), Sent(), Received() and NeighborIDs() return
//     sorted copies, so algorithms and tests see a stable order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error             // O(1)
//	HasVertex(id string) bool              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) error         // O(1), idempotent
//	AddEdges(from string, to []string) error // O(k), one lock acquisition
//	HasEdge(from, to string) bool          // O(1)
//
//	// Degrees & neighborhoods
//	SentDegree(id string) int              // O(1), 0 if unknown
//	ReceivedDegree(id string) int          // O(1), 0 if unknown
//	Sent(id) / Received(id) []string       // O(d·log d), sorted copies
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sent ∪ received
//
//	// Counts & views
//	Vertices() []string, VertexCount(), EdgeCount(), Stats()
//	Clone() *Graph, Without(ids ...string) *Graph
//
// Concurrency:
//
// A single sync.RWMutex guards the vertex catalog and both adjacency views.
// Every mutating method holds the write lock for the whole operation, never
// for sub-steps, so concurrent ingestion workers serialize their writes while
// file reading and parsing stay parallel. Reads take the read lock and are safe
// at any time, but analysis results are only meaningful once writers stopped.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – neighborhood query for a missing vertex
package core
