// SPDX-License-Identifier: MIT

package connectivity

import (
	"errors"
	"math/rand"
	"sort"
)

// Sentinel errors for analysis and verification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrNeighbors wraps a failed neighbor lookup.
	ErrNeighbors = errors.New("connectivity: neighbor iteration error")

	// ErrVerifyFailed is returned by Verify when a result disagrees with the graph.
	ErrVerifyFailed = errors.New("connectivity: verification failed")
)

// Option configures Analyze.
type Option func(*options)

type options struct {
	// neighborOrder may permute the sorted neighbor slice of id in place.
	neighborOrder func(id string, nbrs []string)
	// vertexOrder may permute the sorted root-scan slice in place.
	vertexOrder func(ids []string)
}

func defaultOptions() options {
	return options{
		neighborOrder: func(string, []string) {},
		vertexOrder:   func([]string) {},
	}
}

// WithNeighborOrder installs a hook that reorders each vertex's neighbors
// before they are explored. The hook must only permute the slice.
func WithNeighborOrder(fn func(id string, nbrs []string)) Option {
	return func(o *options) {
		if fn != nil {
			o.neighborOrder = fn
		}
	}
}

// WithVertexOrder installs a hook that reorders the root scan.
// The hook must only permute the slice.
func WithVertexOrder(fn func(ids []string)) Option {
	return func(o *options) {
		if fn != nil {
			o.vertexOrder = fn
		}
	}
}

// WithShuffle randomizes both neighbor and root-scan order from seed.
func WithShuffle(seed int64) Option {
	return func(o *options) {
		rng := rand.New(rand.NewSource(seed))
		shuffle := func(s []string) {
			rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		}
		o.neighborOrder = func(_ string, nbrs []string) { shuffle(nbrs) }
		o.vertexOrder = shuffle
	}
}

// Result holds the normalized outcome of Analyze.
//
//   - Components: members sorted, components ordered by smallest member.
//     The position of a component is its id.
//   - Connectors: sorted.
type Result struct {
	Components [][]string
	Connectors []string

	team      map[string]int
	connector map[string]struct{}
}

// Summary condenses a Result for logs and reports.
type Summary struct {
	Vertices   int
	Components int
	Singletons int
	Largest    int
	Connectors int
}

// newResult normalizes raw components and connectors and builds the lookup index.
func newResult(components [][]string, connectors []string) *Result {
	for _, c := range components {
		sort.Strings(c)
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	sort.Strings(connectors)

	r := &Result{
		Components: components,
		Connectors: connectors,
		team:       make(map[string]int),
		connector:  make(map[string]struct{}, len(connectors)),
	}
	for id, members := range components {
		for _, v := range members {
			r.team[v] = id
		}
	}
	for _, v := range connectors {
		r.connector[v] = struct{}{}
	}

	return r
}

// ComponentOf returns the component id of v.
func (r *Result) ComponentOf(v string) (int, bool) {
	id, ok := r.team[v]
	return id, ok
}

// ComponentSize returns the size of v's component, or 0 if v is unknown.
// Complexity: O(1).
func (r *Result) ComponentSize(v string) int {
	id, ok := r.team[v]
	if !ok {
		return 0
	}

	return len(r.Components[id])
}

// IsConnector reports whether v is an articulation point.
func (r *Result) IsConnector(v string) bool {
	_, ok := r.connector[v]
	return ok
}

// ComponentCount returns the number of components.
func (r *Result) ComponentCount() int { return len(r.Components) }

// Largest returns the members of the biggest component; ties go to the
// lower id. Nil for an empty result.
func (r *Result) Largest() []string {
	var best []string
	for _, c := range r.Components {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

// Summary returns aggregate counts.
func (r *Result) Summary() Summary {
	s := Summary{
		Vertices:   len(r.team),
		Components: len(r.Components),
		Largest:    len(r.Largest()),
		Connectors: len(r.Connectors),
	}
	for _, c := range r.Components {
		if len(c) == 1 {
			s.Singletons++
		}
	}

	return s
}
