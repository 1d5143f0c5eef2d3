// SPDX-License-Identifier: MIT
// Package app wires the pipeline: ingest, analyze, report and then either
// the interactive session or a single path query.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/commgraph/config"
	"github.com/katalvlaran/commgraph/connectivity"
	"github.com/katalvlaran/commgraph/console"
	"github.com/katalvlaran/commgraph/core"
	"github.com/katalvlaran/commgraph/extract"
	"github.com/katalvlaran/commgraph/graphdb"
	"github.com/katalvlaran/commgraph/ingest"
	"github.com/katalvlaran/commgraph/logging"
	"github.com/katalvlaran/commgraph/metrics"
	"github.com/katalvlaran/commgraph/query"
	"github.com/katalvlaran/commgraph/telemetry"
)

// Exporter receives the analysed graph.
type Exporter interface {
	Export(ctx context.Context, g *core.Graph, res *connectivity.Result, runID string) error
	Close(ctx context.Context) error
}

// ExporterFunc opens an Exporter for the configured target.
type ExporterFunc func(ctx context.Context, cfg config.Neo4j) (Exporter, error)

func neo4jExporter(ctx context.Context, cfg config.Neo4j) (Exporter, error) {
	return graphdb.NewLoader(ctx, cfg.URI, cfg.User, cfg.Password, cfg.Database)
}

// Option configures an App.
type Option func(*App)

// WithExporter replaces the Neo4j exporter.
func WithExporter(fn ExporterFunc) Option {
	return func(a *App) {
		if fn != nil {
			a.exporter = fn
		}
	}
}

// WithInput sets the interactive input stream.
func WithInput(r io.Reader) Option {
	return func(a *App) { a.in = r }
}

// App runs one configured pipeline. Primary output goes to out;
// diagnostics (logs, spans, the run report) go to diag.
type App struct {
	cfg      config.Config
	in       io.Reader
	out      io.Writer
	diag     io.Writer
	exporter ExporterFunc
	metrics  *metrics.Metrics
	runID    string
}

// New returns an App for a validated cfg.
func New(cfg config.Config, out, diag io.Writer, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		in:       strings.NewReader(""),
		out:      out,
		diag:     diag,
		exporter: neo4jExporter,
		metrics:  metrics.New(),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// RunID identifies this run in logs and exported nodes.
func (a *App) RunID() string { return a.runID }

// Metrics returns the run's collectors.
func (a *App) Metrics() *metrics.Metrics { return a.metrics }

// Analysis is the outcome of ingest followed by connectivity analysis.
type Analysis struct {
	Graph    *core.Graph
	Result   *connectivity.Result
	Ingest   *ingest.Stats
	Duration time.Duration
}

// start installs logger, tracer and metrics server. stop must be called
// once the run is over.
func (a *App) start(ctx context.Context) (context.Context, func(), error) {
	logger, err := logging.New(a.cfg.Log.Level, a.cfg.Log.Format, a.diag)
	if err != nil {
		return ctx, nil, err
	}
	logger = logger.With(slog.String("run_id", a.runID))
	ctx = logging.WithLogger(ctx, logger)

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Exporter: a.cfg.Trace.Exporter,
		Writer:   a.diag,
	})
	if err != nil {
		return ctx, nil, err
	}

	srvCtx, cancel := context.WithCancel(ctx)
	stop := func() {
		cancel()
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry: shutdown failed", slog.Any("error", err))
		}
	}
	if a.cfg.Metrics.Addr != "" {
		if _, err := a.metrics.Serve(srvCtx, a.cfg.Metrics.Addr); err != nil {
			stop()
			return ctx, nil, err
		}
	}

	return ctx, stop, nil
}

// Analyze ingests root and runs connectivity analysis, plus the
// brute-force check when enabled and the graph is small enough.
func (a *App) Analyze(ctx context.Context, root string) (*Analysis, error) {
	log := logging.FromContext(ctx)

	ex, err := extract.New(a.cfg.Domain)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph()
	st, err := ingest.New(g, ex,
		ingest.WithWorkers(a.cfg.Workers),
		ingest.WithDrainTimeout(a.cfg.DrainTimeout),
		ingest.WithRecorder(a.metrics),
	).Run(ctx, root)
	if err != nil {
		return nil, err
	}
	a.metrics.ObserveIngest(st.Duration)
	gs := g.Stats()
	log.Info("graph built",
		slog.Int("vertices", gs.VertexCount),
		slog.Int("edges", gs.EdgeCount),
		slog.Int("isolated", gs.IsolatedCount),
		slog.Int("self_loops", gs.SelfLoopCount))

	start := time.Now()
	res, err := connectivity.Analyze(ctx, g)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	a.metrics.ObserveAnalysis(elapsed, g.VertexCount(), res.ComponentCount(), len(res.Connectors))

	if a.cfg.Verify.Enabled {
		if n := g.VertexCount(); n > a.cfg.Verify.MaxVertices {
			log.Warn("verify: skipped, graph too large",
				slog.Int("vertices", n),
				slog.Int("max_vertices", a.cfg.Verify.MaxVertices))
		} else if err := connectivity.Verify(g, res); err != nil {
			return nil, err
		} else {
			log.Info("verify: analysis matches brute force", slog.Int("vertices", n))
		}
	}

	return &Analysis{Graph: g, Result: res, Ingest: st, Duration: elapsed}, nil
}

// Run executes the full pipeline over root. When connectorsFile is set
// the connectors are also saved there; a failure to save is logged only.
func (a *App) Run(ctx context.Context, root, connectorsFile string) error {
	ctx, stop, err := a.start(ctx)
	if err != nil {
		return err
	}
	defer stop()
	log := logging.FromContext(ctx)

	an, err := a.Analyze(ctx, root)
	if err != nil {
		return err
	}

	if err := console.WriteConnectors(a.out, an.Result.Connectors); err != nil {
		return err
	}
	if connectorsFile != "" {
		if err := console.SaveConnectors(connectorsFile, an.Result.Connectors); err != nil {
			log.Error("connectors: save failed", slog.String("path", connectorsFile), slog.Any("error", err))
		}
	}
	if err := console.RenderReport(a.diag, report(root, an)); err != nil {
		log.Warn("report: render failed", slog.Any("error", err))
	}

	if a.cfg.Neo4j.Enabled() {
		if err := a.export(ctx, an); err != nil {
			log.Error("neo4j: export failed", slog.Any("error", err))
		}
	}

	if !a.cfg.Interactive {
		return nil
	}

	return console.NewSession(query.New(an.Graph, an.Result)).Run(ctx, a.in, a.out)
}

// Path prints the shortest communication chain from one address to another,
// one hop per arrow.
func (a *App) Path(ctx context.Context, root, from, to string) error {
	ctx, stop, err := a.start(ctx)
	if err != nil {
		return err
	}
	defer stop()

	an, err := a.Analyze(ctx, root)
	if err != nil {
		return err
	}
	chain, err := query.New(an.Graph, an.Result).Path(from, to)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s\n%d hops\n", strings.Join(chain, " -> "), len(chain)-1)

	return err
}

func (a *App) export(ctx context.Context, an *Analysis) error {
	exp, err := a.exporter(ctx, a.cfg.Neo4j)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := exp.Close(ctx); cerr != nil {
			logging.FromContext(ctx).Warn("neo4j: close failed", slog.Any("error", cerr))
		}
	}()

	return exp.Export(ctx, an.Graph, an.Result, a.runID)
}

func report(root string, an *Analysis) console.Report {
	sum := an.Result.Summary()
	return console.Report{
		Root:       root,
		Files:      an.Ingest.Files,
		Processed:  an.Ingest.Processed,
		FileErrors: an.Ingest.FileErrors,
		DirErrors:  an.Ingest.DirErrors,
		TimedOut:   an.Ingest.TimedOut,
		Vertices:   sum.Vertices,
		Edges:      an.Graph.EdgeCount(),
		Teams:      sum.Components,
		Singletons: sum.Singletons,
		Largest:    sum.Largest,
		Connectors: sum.Connectors,
		Ingest:     an.Ingest.Duration,
		Analysis:   an.Duration,
	}
}
