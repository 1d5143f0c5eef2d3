// SPDX-License-Identifier: MIT
// Package query answers per-person questions over an analyzed graph:
// degrees, team size, connector status and communication chains.
//
// A Service is read-only and safe for concurrent use once built; it must be
// created after analysis, over a graph that is no longer mutated.
package query

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/commgraph/bfs"
	"github.com/katalvlaran/commgraph/connectivity"
	"github.com/katalvlaran/commgraph/core"
)

// Sentinel errors for Path.
var (
	ErrUnknownAddress = errors.New("query: address not in dataset")
	ErrNoPath         = errors.New("query: no communication chain")
)

// Profile is everything the service knows about one address.
type Profile struct {
	Address   string
	Sent      int
	Received  int
	TeamSize  int
	Connector bool
}

// Service answers lookups against g and its analysis result.
type Service struct {
	graph *core.Graph
	res   *connectivity.Result
}

// New wraps g and res.
func New(g *core.Graph, res *connectivity.Result) *Service {
	return &Service{graph: g, res: res}
}

// SentDegree returns how many distinct people id wrote to; 0 if unknown.
func (s *Service) SentDegree(id string) int { return s.graph.SentDegree(id) }

// ReceivedDegree returns how many distinct people wrote to id; 0 if unknown.
func (s *Service) ReceivedDegree(id string) int { return s.graph.ReceivedDegree(id) }

// ComponentSize returns the size of id's team, or 0 if id is not in the graph.
func (s *Service) ComponentSize(id string) int {
	if !s.graph.HasVertex(id) {
		return 0
	}

	return s.res.ComponentSize(id)
}

// IsConnector reports whether id holds its team together.
func (s *Service) IsConnector(id string) bool { return s.res.IsConnector(id) }

// Lookup returns the profile for id, or false if id is not in the graph.
func (s *Service) Lookup(id string) (Profile, bool) {
	if !s.graph.HasVertex(id) {
		return Profile{}, false
	}

	return Profile{
		Address:   id,
		Sent:      s.graph.SentDegree(id),
		Received:  s.graph.ReceivedDegree(id),
		TeamSize:  s.res.ComponentSize(id),
		Connector: s.res.IsConnector(id),
	}, true
}

// Path returns the shortest chain of correspondents from one address to
// another, both endpoints included. Direction is ignored.
func (s *Service) Path(from, to string) ([]string, error) {
	for _, id := range []string{from, to} {
		if !s.graph.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddress, id)
		}
	}
	a, _ := s.res.ComponentOf(from)
	b, _ := s.res.ComponentOf(to)
	if a != b {
		return nil, fmt.Errorf("%w: %q and %q are in different teams", ErrNoPath, from, to)
	}

	walk, err := bfs.BFS(s.graph, from)
	if err != nil {
		return nil, fmt.Errorf("query: path %q→%q: %w", from, to, err)
	}
	path, err := walk.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, err)
	}

	return path, nil
}
