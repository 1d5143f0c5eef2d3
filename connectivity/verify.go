// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/commgraph/bfs"
	"github.com/katalvlaran/commgraph/core"
)

// Verify recomputes res by brute force and returns ErrVerifyFailed wrapped
// with the first mismatch.
//
// Checks, in order:
//  1. Components are disjoint, contain only graph vertices and cover all of them.
//  2. Each component is exactly the BFS reach of its first member.
//  3. For each vertex v, removing v splits its component iff res lists v
//     as a connector.
//
// Complexity: O(V·(V + E)).
func Verify(g *core.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrVerifyFailed)
	}

	owner := make(map[string]int, g.VertexCount())
	for id, members := range res.Components {
		if len(members) == 0 {
			return fmt.Errorf("%w: component %d is empty", ErrVerifyFailed, id)
		}
		for _, v := range members {
			if !g.HasVertex(v) {
				return fmt.Errorf("%w: %q is not a vertex", ErrVerifyFailed, v)
			}
			if prev, dup := owner[v]; dup {
				return fmt.Errorf("%w: %q is in components %d and %d", ErrVerifyFailed, v, prev, id)
			}
			owner[v] = id
		}
	}
	if len(owner) != g.VertexCount() {
		return fmt.Errorf("%w: components cover %d of %d vertices", ErrVerifyFailed, len(owner), g.VertexCount())
	}

	for id, members := range res.Components {
		reach, err := bfs.BFS(g, members[0])
		if err != nil {
			return fmt.Errorf("%w: component %d: %v", ErrVerifyFailed, id, err)
		}
		if len(reach.Order) != len(members) {
			return fmt.Errorf("%w: component %d has %d members but %q reaches %d",
				ErrVerifyFailed, id, len(members), members[0], len(reach.Order))
		}
		for _, v := range members {
			if !reach.Reached(v) {
				return fmt.Errorf("%w: %q is not reachable inside component %d", ErrVerifyFailed, v, id)
			}
		}
	}

	reported := make(map[string]bool, len(res.Connectors))
	for _, v := range res.Connectors {
		if _, ok := owner[v]; !ok {
			return fmt.Errorf("%w: connector %q is not a vertex", ErrVerifyFailed, v)
		}
		reported[v] = true
	}
	for _, members := range res.Components {
		for _, v := range members {
			split, err := splits(g, members, v)
			if err != nil {
				return fmt.Errorf("%w: removing %q: %v", ErrVerifyFailed, v, err)
			}
			if split != reported[v] {
				return fmt.Errorf("%w: %q splits=%t but connector=%t", ErrVerifyFailed, v, split, reported[v])
			}
		}
	}

	return nil
}

// splits reports whether removing v disconnects the rest of its component.
func splits(g *core.Graph, members []string, v string) (bool, error) {
	if len(members) < 3 {
		return false, nil
	}
	start := members[0]
	if start == v {
		start = members[1]
	}
	reach, err := bfs.BFS(g, start, bfs.WithExclude(v))
	if err != nil {
		return false, err
	}

	return len(reach.Order) < len(members)-1, nil
}

// splitsWithout answers the same question as splits on a copy of g that
// no longer contains v.
func splitsWithout(g *core.Graph, members []string, v string) (bool, error) {
	if len(members) < 3 {
		return false, nil
	}
	start := members[0]
	if start == v {
		start = members[1]
	}
	reach, err := bfs.BFS(g.Without(v), start)
	if err != nil {
		return false, err
	}

	return len(reach.Order) < len(members)-1, nil
}

// BruteForce derives components and connectors without DFS bookkeeping,
// deleting one vertex at a time from a copy of g. Verify checks removal
// through BFS exclusion instead.
func BruteForce(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	components := make([][]string, 0)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		reach, err := bfs.BFS(g, v)
		if err != nil {
			return nil, err
		}
		members := append([]string(nil), reach.Order...)
		for _, m := range members {
			seen[m] = true
		}
		components = append(components, members)
	}

	connectors := make([]string, 0)
	for _, members := range components {
		sorted := append([]string(nil), members...)
		sort.Strings(sorted)
		for _, v := range sorted {
			split, err := splitsWithout(g, sorted, v)
			if err != nil {
				return nil, err
			}
			if split {
				connectors = append(connectors, v)
			}
		}
	}

	return newResult(components, connectors), nil
}
