// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/commgraph/core"
	"github.com/katalvlaran/commgraph/logging"
)

var tracer = otel.Tracer("github.com/katalvlaran/commgraph/ingest")

// Ingestor feeds message files into a graph. An Ingestor may be reused for
// several Runs; each Run has its own counters and seal.
type Ingestor struct {
	graph *core.Graph
	ex    Extractor
	opts  options
}

// New returns an Ingestor writing into g.
func New(g *core.Graph, ex Extractor, opts ...Option) *Ingestor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Ingestor{graph: g, ex: ex, opts: o}
}

// run is the state shared by one traversal and its workers. mu guards
// every field below it and every graph write made by the run.
type run struct {
	graph *core.Graph
	ex    Extractor
	rec   Recorder
	log   *slog.Logger

	mu     sync.Mutex
	sealed bool
	stats  Stats
}

// Run walks root and ingests every file beneath it. The returned Stats are
// valid whenever err is nil, also after a drain timeout.
func (in *Ingestor) Run(ctx context.Context, root string) (*Stats, error) {
	if in.graph == nil {
		return nil, ErrNilGraph
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	ctx, span := tracer.Start(ctx, "ingest.Run", trace.WithAttributes(
		attribute.String("root", root),
		attribute.Int("workers", in.opts.workers),
	))
	defer span.End()
	start := time.Now()

	r := &run{
		graph: in.graph,
		ex:    in.ex,
		rec:   in.opts.recorder,
		log:   logging.FromContext(ctx),
	}

	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(poolCtx)

	// Dispatch never waits on worker capacity; the drain timer starts when
	// the walk ends, stuck workers or not.
	queue := newPathQueue()
	for i := 0; i < in.opts.workers; i++ {
		eg.Go(func() error {
			for {
				path, ok := queue.pop()
				if !ok || egCtx.Err() != nil {
					return nil
				}
				r.process(egCtx, path)
			}
		})
	}

	walk(ctx, root,
		func(path string) bool {
			r.dispatched()
			queue.push(path)
			return ctx.Err() == nil
		},
		r.dirFailed,
	)
	queue.close()

	done := make(chan struct{})
	go func() {
		_ = eg.Wait()
		close(done)
	}()

	timer := time.NewTimer(in.opts.drainTimeout)
	defer timer.Stop()

	var reason string
	select {
	case <-done:
	case <-timer.C:
		reason = "drain timeout"
	case <-ctx.Done():
		reason = "context cancelled"
	}
	if reason != "" {
		cancel()
		queue.drop()
		r.seal()
	}

	r.mu.Lock()
	stats := r.stats
	r.mu.Unlock()
	stats.Duration = time.Since(start)

	if stats.TimedOut {
		span.SetStatus(codes.Error, reason)
		r.rec.DrainTimedOut()
		r.log.Warn("ingest: pool did not drain, continuing with partial graph",
			slog.String("reason", reason),
			slog.Duration("drain_timeout", in.opts.drainTimeout),
			slog.Int("dispatched", stats.Files),
			slog.Int("processed", stats.Processed),
		)
	}
	span.SetAttributes(
		attribute.Int("files", stats.Files),
		attribute.Int("processed", stats.Processed),
		attribute.Int("edges", stats.Edges),
	)
	r.log.Info("ingest: run complete",
		slog.Int("files", stats.Files),
		slog.Int("processed", stats.Processed),
		slog.Int("with_sender", stats.WithSender),
		slog.Int("file_errors", stats.FileErrors),
		slog.Int("dir_errors", stats.DirErrors),
		slog.Duration("duration", stats.Duration),
	)

	return &stats, nil
}

func (r *run) dispatched() {
	r.mu.Lock()
	r.stats.Files++
	r.mu.Unlock()
	r.rec.FileDispatched()
}

func (r *run) dirFailed(path string, err error) {
	r.mu.Lock()
	r.stats.DirErrors++
	r.mu.Unlock()
	r.rec.DirFailed()
	r.log.Warn("ingest: cannot list directory, skipping subtree",
		slog.String("path", path),
		slog.Any("error", err),
	)
}

// seal stops every later write by this run's workers.
func (r *run) seal() {
	r.mu.Lock()
	r.sealed = true
	r.stats.TimedOut = true
	r.mu.Unlock()
}

// process handles one file. Read and extraction happen outside the lock;
// the counter update and the whole edge batch happen inside it.
func (r *run) process(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.sealed {
			return
		}
		r.stats.Processed++
		r.stats.FileErrors++
		r.rec.FileFailed()
		r.log.Warn("ingest: cannot read file, skipping",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return
	}
	msg := r.ex.Extract(raw)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return
	}
	r.stats.Processed++
	if !msg.HasSender() {
		r.rec.FileProcessed(false, 0)
		return
	}
	if err := r.graph.AddEdges(msg.Sender, msg.Recipients); err != nil {
		// Extraction never yields empty addresses; count it as a file error.
		r.stats.FileErrors++
		r.log.Error("ingest: rejected edge batch", slog.String("path", path), slog.Any("error", err))
		return
	}
	r.stats.WithSender++
	r.stats.Edges += len(msg.Recipients)
	r.rec.FileProcessed(true, len(msg.Recipients))
}
