// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus collectors for ingestion and analysis
// on a private registry.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/commgraph/logging"
)

const namespace = "commgraph"

// Metrics holds every collector. It implements ingest.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	filesDispatched prometheus.Counter
	filesProcessed  *prometheus.CounterVec
	filesFailed     prometheus.Counter
	dirErrors       prometheus.Counter
	edges           prometheus.Counter
	drainTimeouts   prometheus.Counter

	ingestDuration   prometheus.Histogram
	analysisDuration prometheus.Histogram

	vertices   prometheus.Gauge
	components prometheus.Gauge
	connectors prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		filesDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "files_dispatched_total",
			Help: "Candidate files handed to the worker pool.",
		}),
		filesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "files_processed_total",
			Help: "Files fully processed, by whether a sender was found.",
		}, []string{"sender"}),
		filesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "files_failed_total",
			Help: "Files that could not be read.",
		}),
		dirErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "dir_errors_total",
			Help: "Directories that could not be listed.",
		}),
		edges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "edge_inserts_total",
			Help: "Edge insertions requested, duplicates included.",
		}),
		drainTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "drain_timeouts_total",
			Help: "Runs whose worker pool did not drain in time.",
		}),
		ingestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "ingest", Name: "duration_seconds",
			Help:    "Wall time of an ingestion run.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "analysis", Name: "duration_seconds",
			Help:    "Wall time of connectivity analysis.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "graph", Name: "vertices",
			Help: "Distinct addresses in the graph.",
		}),
		components: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "graph", Name: "components",
			Help: "Teams found by the last analysis.",
		}),
		connectors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "graph", Name: "connectors",
			Help: "Connectors found by the last analysis.",
		}),
	}
	reg.MustRegister(
		m.filesDispatched, m.filesProcessed, m.filesFailed, m.dirErrors, m.edges, m.drainTimeouts,
		m.ingestDuration, m.analysisDuration,
		m.vertices, m.components, m.connectors,
	)

	return m
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// FileDispatched counts one file handed to the pool.
func (m *Metrics) FileDispatched() { m.filesDispatched.Inc() }

// FileProcessed counts one finished file and its edge insertions.
func (m *Metrics) FileProcessed(withSender bool, edges int) {
	label := "no"
	if withSender {
		label = "yes"
	}
	m.filesProcessed.WithLabelValues(label).Inc()
	m.edges.Add(float64(edges))
}

// FileFailed counts one unreadable file.
func (m *Metrics) FileFailed() { m.filesFailed.Inc() }

// DirFailed counts one unlistable directory.
func (m *Metrics) DirFailed() { m.dirErrors.Inc() }

// DrainTimedOut counts one run whose pool was sealed early.
func (m *Metrics) DrainTimedOut() { m.drainTimeouts.Inc() }

// ObserveIngest records ingestion wall time.
func (m *Metrics) ObserveIngest(d time.Duration) { m.ingestDuration.Observe(d.Seconds()) }

// ObserveAnalysis records analysis wall time and the resulting sizes.
func (m *Metrics) ObserveAnalysis(d time.Duration, vertices, components, connectors int) {
	m.analysisDuration.Observe(d.Seconds())
	m.vertices.Set(float64(vertices))
	m.components.Set(float64(components))
	m.connectors.Set(float64(connectors))
}

// Handler serves the private registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes /metrics on addr until ctx is done. The listener is bound
// before Serve returns, so a bad address fails fast; the returned channel
// reports the server's exit.
func (m *Metrics) Serve(ctx context.Context, addr string) (<-chan error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.FromContext(ctx).Info("metrics: serving", slog.String("addr", ln.Addr().String()))

	return done, nil
}
