// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Degree and neighborhood queries over the sent/received views.
// Determinism:
//   - Sent(), Received() and NeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - All methods hold the read lock and return independent copies.

package core

import "sort"

// SentDegree returns the number of distinct addresses id wrote to.
// Unknown or empty IDs yield 0.
//
// Complexity: O(1).
func (g *Graph) SentDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.sent[id])
}

// ReceivedDegree returns the number of distinct addresses that wrote to id.
// Unknown or empty IDs yield 0.
//
// Complexity: O(1).
func (g *Graph) ReceivedDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.received[id])
}

// Sent returns the out-neighbors of id, sorted ascending (nil if none).
// Complexity: O(d log d).
func (g *Graph) Sent(id string) []string {
	g.mu.RLock()
	out := keys(g.sent[id])
	g.mu.RUnlock()

	return out
}

// Received returns the in-neighbors of id, sorted ascending (nil if none).
// Complexity: O(d log d).
func (g *Graph) Received(id string) []string {
	g.mu.RLock()
	out := keys(g.received[id])
	g.mu.RUnlock()

	return out
}

// NeighborIDs returns the undirected neighborhood of id: the union of its
// sent and received views, without id itself, sorted ascending.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID) and existence (ErrVertexNotFound).
//   - Stage 2: Merge both buckets into a set, dropping a self-loop.
//   - Stage 3: Sort.
//
// Behavior highlights:
//   - A pair that communicated in both directions appears once.
//   - An isolated vertex yields an empty, non-nil slice.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), d = |sent[id]| + |received[id]|.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out, in := g.sent[id], g.received[id]
	set := make(map[string]struct{}, len(out)+len(in))
	for nbr := range out {
		set[nbr] = struct{}{}
	}
	for nbr := range in {
		set[nbr] = struct{}{}
	}
	g.mu.RUnlock()

	delete(set, id)
	ids := make([]string, 0, len(set))
	for nbr := range set {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// keys returns the sorted members of a bucket, or nil for an empty one.
func keys(bucket map[string]struct{}) []string {
	if len(bucket) == 0 {
		return nil
	}
	out := make([]string, 0, len(bucket))
	for id := range bucket {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
