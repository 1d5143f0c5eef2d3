// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdges/HasEdge/EdgeCount.
//
// Concurrency:
//   - Mutations hold the write lock for the whole operation, covering both
//     endpoints, the sent bucket and the received bucket.
//   - Read queries hold the read lock.

package core

// AddEdge records that from wrote to "to".
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID).
//  2. Lock once.
//  3. Register both endpoints.
//  4. Insert sent[from][to] and received[to][from] together.
//
// Behavior highlights:
//   - Idempotent: a second insertion of the same pair changes nothing.
//   - Self-loops (from == to) are stored like any other pair.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addEdgeLocked(from, to)

	return nil
}

// AddEdges records that from wrote to every ID in to, in one critical section.
//
// Validation happens before the lock is taken: if any ID is empty nothing is
// inserted and ErrEmptyVertexID is returned. An empty to slice still registers
// from as a vertex.
//
// Complexity: O(len(to)) amortized.
func (g *Graph) AddEdges(from string, to []string) error {
	if from == "" {
		return ErrEmptyVertexID
	}
	for _, id := range to {
		if id == "" {
			return ErrEmptyVertexID
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	for _, id := range to {
		g.addEdgeLocked(from, id)
	}

	return nil
}

// addEdgeLocked inserts the sent/received pair; caller holds the write lock.
func (g *Graph) addEdgeLocked(from, to string) {
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	out, ok := g.sent[from]
	if !ok {
		out = make(map[string]struct{})
		g.sent[from] = out
	}
	if _, dup := out[to]; dup {
		return
	}
	out[to] = struct{}{}

	in, ok := g.received[to]
	if !ok {
		in = make(map[string]struct{})
		g.received[to] = in
	}
	in[from] = struct{}{}

	g.edgeCount++
}

// HasEdge reports whether from has sent to "to".
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.sent[from][to]

	return ok
}

// EdgeCount returns the number of distinct directed (from,to) pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
