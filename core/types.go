// SPDX-License-Identifier: MIT

// Package core defines the Graph type, its options and sentinel errors.
//
// This file declares Graph, GraphOption, GraphStats, the sentinel errors and
// the NewGraph constructor. Method sets live in methods_*.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog and both adjacency views for
// roughly n vertices. Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the communication graph: a vertex catalog plus the sent and
// received adjacency views, kept as exact inverses of each other.
//
// mu guards vertices, sent, received and edgeCount.
type Graph struct {
	mu sync.RWMutex

	capacity int // construction-time size hint

	// vertices is the catalog of every known address.
	vertices map[string]struct{}

	// sent[from][to] records that from wrote to "to".
	sent map[string]map[string]struct{}

	// received[to][from] is the inverse of sent.
	received map[string]map[string]struct{}

	// edgeCount is the number of distinct (from,to) pairs in sent.
	edgeCount int
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	// VertexCount is the number of vertices.
	VertexCount int

	// EdgeCount is the number of distinct directed (from,to) pairs.
	EdgeCount int

	// IsolatedCount is the number of vertices with neither sent nor received edges.
	IsolatedCount int

	// SelfLoopCount is the number of vertices that sent to themselves.
	SelfLoopCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus the optional capacity pre-allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]struct{}, g.capacity)
	g.sent = make(map[string]map[string]struct{}, g.capacity)
	g.received = make(map[string]map[string]struct{}, g.capacity)

	return g
}
