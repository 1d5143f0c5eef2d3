// SPDX-License-Identifier: MIT

package connectivity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/commgraph/core"
	"github.com/katalvlaran/commgraph/logging"
)

var tracer = otel.Tracer("github.com/katalvlaran/commgraph/connectivity")

// frame is one DFS stack entry: a vertex and the cursor into its neighbors.
type frame struct {
	id   string
	nbrs []string
	next int
}

// analyzer owns all per-call state. The discovery counter is never reset
// between trees.
type analyzer struct {
	graph *core.Graph
	opts  options

	counter   int
	disc      map[string]int
	low       map[string]int
	parent    map[string]string
	connector map[string]bool

	stack []frame
}

// Analyze computes components and connectors of g. It must run after g has
// stopped changing. ctx carries the logger and trace span only; the pass is
// not cancellable.
func Analyze(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	ctx, span := tracer.Start(ctx, "connectivity.Analyze",
		trace.WithAttributes(
			attribute.Int("vertex_count", n),
			attribute.Int("edge_count", g.EdgeCount()),
		),
	)
	defer span.End()
	start := time.Now()

	a := &analyzer{
		graph:     g,
		opts:      o,
		disc:      make(map[string]int, n),
		low:       make(map[string]int, n),
		parent:    make(map[string]string, n),
		connector: make(map[string]bool),
	}

	roots := g.Vertices()
	o.vertexOrder(roots)

	components := make([][]string, 0)
	for _, root := range roots {
		if _, seen := a.disc[root]; seen {
			continue
		}
		members, err := a.tree(root)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		components = append(components, members)
	}

	connectors := make([]string, 0, len(a.connector))
	for id := range a.connector {
		connectors = append(connectors, id)
	}
	res := newResult(components, connectors)

	span.AddEvent("analysis_complete", trace.WithAttributes(
		attribute.Int("components", res.ComponentCount()),
		attribute.Int("connectors", len(res.Connectors)),
	))
	logging.FromContext(ctx).Debug("connectivity: analysis complete",
		slog.Int("vertices", n),
		slog.Int("components", res.ComponentCount()),
		slog.Int("connectors", len(res.Connectors)),
		slog.Duration("duration", time.Since(start)),
	)

	return res, nil
}

// discover assigns disc/low to id and pushes its frame.
func (a *analyzer) discover(id string) error {
	nbrs, err := a.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
	}
	a.opts.neighborOrder(id, nbrs)

	a.disc[id] = a.counter
	a.low[id] = a.counter
	a.counter++
	a.stack = append(a.stack, frame{id: id, nbrs: nbrs})

	return nil
}

// tree explores everything reachable from root and returns it.
//
// A frame stays on the stack while its children are explored; once its
// cursor is exhausted every neighbor is visited, so low can be folded in a
// single pass and the articulation rule applied.
func (a *analyzer) tree(root string) ([]string, error) {
	var members []string
	if err := a.discover(root); err != nil {
		return nil, err
	}

	for len(a.stack) > 0 {
		top := len(a.stack) - 1
		f := &a.stack[top]

		if f.next < len(f.nbrs) {
			v := f.nbrs[f.next]
			f.next++
			if _, seen := a.disc[v]; seen {
				continue
			}
			a.parent[v] = f.id
			if err := a.discover(v); err != nil {
				return nil, err
			}
			continue
		}

		a.finish(f, f.id == root)
		members = append(members, f.id)
		a.stack = a.stack[:top]
	}

	return members, nil
}

// finish folds low[u] and decides whether u is a connector.
func (a *analyzer) finish(f *frame, isRoot bool) {
	u := f.id
	up := a.parent[u]
	low := a.disc[u]
	children := 0

	for _, v := range f.nbrs {
		if p, ok := a.parent[v]; ok && p == u {
			children++
			if a.low[v] < low {
				low = a.low[v]
			}
			if !isRoot && a.low[v] >= a.disc[u] {
				a.connector[u] = true
			}
			continue
		}
		if !isRoot && v == up {
			continue
		}
		if a.disc[v] < low {
			low = a.disc[v]
		}
	}
	a.low[u] = low

	if isRoot && children > 1 {
		a.connector[u] = true
	}
}
