package connectivity_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commgraph/builder"
	"github.com/katalvlaran/commgraph/connectivity"
	"github.com/katalvlaran/commgraph/core"
)

func analyze(t *testing.T, g *core.Graph, opts ...connectivity.Option) *connectivity.Result {
	t.Helper()
	res, err := connectivity.Analyze(context.Background(), g, opts...)
	require.NoError(t, err)
	require.NoError(t, connectivity.Verify(g, res))
	return res
}

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)
	return g
}

func TestAnalyze_NilGraph(t *testing.T) {
	_, err := connectivity.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)
}

func TestAnalyze_Empty(t *testing.T) {
	res := analyze(t, core.NewGraph())
	assert.Empty(t, res.Components)
	assert.NotNil(t, res.Connectors)
	assert.Empty(t, res.Connectors)
	assert.Nil(t, res.Largest())
}

// TestAnalyze_Path: A→B, B→C gives one team of 3 with B as the only connector.
func TestAnalyze_Path(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	res := analyze(t, g)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, res.Components)
	assert.Equal(t, []string{"B"}, res.Connectors)
	assert.Equal(t, 3, res.ComponentSize("A"))
}

// TestAnalyze_Star: X wrote to P, Q, R; X is the only connector.
func TestAnalyze_Star(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdges("X", []string{"P", "Q", "R"}))

	res := analyze(t, g)
	assert.Equal(t, [][]string{{"P", "Q", "R", "X"}}, res.Components)
	assert.Equal(t, []string{"X"}, res.Connectors)
	assert.True(t, res.IsConnector("X"))
	assert.False(t, res.IsConnector("P"))
}

// TestAnalyze_IsolatedVertex is a singleton team and never a connector.
func TestAnalyze_IsolatedVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("I"))

	res := analyze(t, g)
	assert.Equal(t, [][]string{{"I"}}, res.Components)
	assert.Empty(t, res.Connectors)
	assert.Equal(t, 1, res.ComponentSize("I"))
}

// TestAnalyze_Disconnected: two pairs give two teams and no connectors.
func TestAnalyze_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "D"))

	res := analyze(t, g)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}}, res.Components)
	assert.Empty(t, res.Connectors)
	assert.Equal(t, 2, res.ComponentSize("A"))
	assert.Equal(t, 2, res.ComponentSize("D"))
	id, ok := res.ComponentOf("D")
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

// TestAnalyze_DirectionIgnored: a received-only link still joins teams.
func TestAnalyze_DirectionIgnored(t *testing.T) {
	for _, d := range []builder.Direction{builder.Forward, builder.Backward, builder.Both, builder.Alternate} {
		t.Run(d.String(), func(t *testing.T) {
			g := build(t, []builder.BuilderOption{builder.WithDirection(d)}, builder.Path(5))
			res := analyze(t, g)
			assert.Equal(t, 1, res.ComponentCount())
			assert.Equal(t, []string{"1", "2", "3"}, res.Connectors)
		})
	}
}

// TestAnalyze_RootRule checks that a root is a connector only with two or
// more DFS children, whichever vertex the scan starts from.
func TestAnalyze_RootRule(t *testing.T) {
	// Leaf root: one child, not a connector.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	res := analyze(t, g, connectivity.WithVertexOrder(func(ids []string) {
		// start at A
	}))
	assert.False(t, res.IsConnector("A"))

	// Middle root: two children, connector.
	res = analyze(t, g, connectivity.WithVertexOrder(func(ids []string) {
		for i, id := range ids {
			if id == "B" {
				ids[0], ids[i] = ids[i], ids[0]
			}
		}
	}))
	assert.True(t, res.IsConnector("B"))

	// Cycle root: DFS reaches the whole ring through one child, not a connector.
	ring := build(t, nil, builder.Cycle(6))
	res = analyze(t, ring)
	assert.Empty(t, res.Connectors)
}

// TestAnalyze_SelfLoop does not affect connectivity.
func TestAnalyze_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A"))
	require.NoError(t, g.AddEdge("A", "B"))

	res := analyze(t, g)
	assert.Equal(t, [][]string{{"A", "B"}}, res.Components)
	assert.Empty(t, res.Connectors)
}

// TestAnalyze_IdempotentEdges: duplicating every pair changes nothing.
func TestAnalyze_IdempotentEdges(t *testing.T) {
	bopts := []builder.BuilderOption{builder.WithSeed(7)}
	once := build(t, bopts, builder.RandomSparse(40, 0.06))
	twice := once.Clone()
	for _, v := range once.Vertices() {
		require.NoError(t, twice.AddEdges(v, once.Sent(v)))
	}

	a, b := analyze(t, once), analyze(t, twice)
	if diff := cmp.Diff(a.Components, b.Components); diff != "" {
		t.Errorf("components differ (-once +twice):\n%s", diff)
	}
	assert.Equal(t, a.Connectors, b.Connectors)
}

// TestAnalyze_BridgedTeams: two triangles joined by a bridge u–v.
func TestAnalyze_BridgedTeams(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Scoped("l", builder.Cycle(3)),
		builder.Scoped("r", builder.Cycle(3)),
		builder.Isolated(1),
	)
	require.NoError(t, g.AddEdge("lA", "rA"))

	res := analyze(t, g)
	assert.Equal(t, [][]string{{"A"}, {"lA", "lB", "lC", "rA", "rB", "rC"}}, res.Components)
	assert.Equal(t, []string{"lA", "rA"}, res.Connectors)

	s := res.Summary()
	assert.Equal(t, connectivity.Summary{Vertices: 7, Components: 2, Singletons: 1, Largest: 6, Connectors: 2}, s)
	assert.Len(t, res.Largest(), 6)
}

// TestAnalyze_DeepPath exercises the explicit stack well beyond any sane
// recursion depth.
func TestAnalyze_DeepPath(t *testing.T) {
	const n = 200000
	g := build(t, nil, builder.Path(n))
	res, err := connectivity.Analyze(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 1, res.ComponentCount())
	assert.Len(t, res.Connectors, n-2)
}

// TestAnalyze_OrderIndependence compares many shuffled runs against the
// brute-force reference.
func TestAnalyze_OrderIndependence(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed), builder.WithDirection(builder.Alternate)},
			builder.RandomSparse(60, 0.04))
		want, err := connectivity.BruteForce(g)
		require.NoError(t, err)

		for shuffle := int64(0); shuffle < 5; shuffle++ {
			got := analyze(t, g, connectivity.WithShuffle(seed*100+shuffle))
			if diff := cmp.Diff(want.Components, got.Components); diff != "" {
				t.Fatalf("seed %d shuffle %d: components (-want +got):\n%s", seed, shuffle, diff)
			}
			if diff := cmp.Diff(want.Connectors, got.Connectors); diff != "" {
				t.Fatalf("seed %d shuffle %d: connectors (-want +got):\n%s", seed, shuffle, diff)
			}
		}
	}
}

// TestAnalyze_NeighborOrderReversed flips every neighbor list.
func TestAnalyze_NeighborOrderReversed(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(50, 0.05))
	plain := analyze(t, g)
	rev := analyze(t, g,
		connectivity.WithNeighborOrder(func(_ string, nbrs []string) {
			for i, j := 0, len(nbrs)-1; i < j; i, j = i+1, j-1 {
				nbrs[i], nbrs[j] = nbrs[j], nbrs[i]
			}
		}),
		connectivity.WithVertexOrder(func(ids []string) {
			for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}),
	)
	assert.Equal(t, plain.Components, rev.Components)
	assert.Equal(t, plain.Connectors, rev.Connectors)
}

// TestAnalyze_RemovalSanity: removing any connector increases the number
// of teams inside its team; removing a non-connector does not.
func TestAnalyze_RemovalSanity(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(35, 0.07))
	res := analyze(t, g)

	for _, members := range res.Components {
		for _, v := range members {
			sub, err := connectivity.Analyze(context.Background(), g.Without(v))
			require.NoError(t, err)

			pieces := map[int]bool{}
			for _, m := range members {
				if m == v {
					continue
				}
				id, ok := sub.ComponentOf(m)
				require.True(t, ok)
				pieces[id] = true
			}
			assert.Equal(t, res.IsConnector(v), len(pieces) > 1, fmt.Sprintf("vertex %s", v))
		}
	}
}

func TestResult_UnknownVertex(t *testing.T) {
	res := analyze(t, build(t, nil, builder.Path(2)))
	assert.Equal(t, 0, res.ComponentSize("nobody"))
	_, ok := res.ComponentOf("nobody")
	assert.False(t, ok)
	assert.False(t, res.IsConnector("nobody"))
}
