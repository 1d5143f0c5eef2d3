// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"runtime"
	"time"

	"github.com/katalvlaran/commgraph/extract"
)

// Sentinel errors for Run.
var (
	// ErrRootNotFound is returned when the root cannot be stat'ed.
	ErrRootNotFound = errors.New("ingest: root directory not found")

	// ErrRootNotDir is returned when the root exists but is not a directory.
	ErrRootNotDir = errors.New("ingest: root is not a directory")

	// ErrNilGraph is returned when New was given a nil graph.
	ErrNilGraph = errors.New("ingest: graph is nil")
)

// DefaultDrainTimeout bounds the wait for in-flight files after traversal.
const DefaultDrainTimeout = 60 * time.Second

// Extractor turns raw file bytes into a message header view.
type Extractor interface {
	Extract(raw []byte) extract.Message
}

// Recorder receives per-event counts. Implementations must be safe for
// concurrent use.
type Recorder interface {
	FileDispatched()
	FileProcessed(withSender bool, edges int)
	FileFailed()
	DirFailed()
	DrainTimedOut()
}

type nopRecorder struct{}

func (nopRecorder) FileDispatched()         {}
func (nopRecorder) FileProcessed(bool, int) {}
func (nopRecorder) FileFailed()             {}
func (nopRecorder) DirFailed()              {}
func (nopRecorder) DrainTimedOut()          {}

// Option configures an Ingestor.
type Option func(*options)

type options struct {
	workers      int
	drainTimeout time.Duration
	recorder     Recorder
}

// WithWorkers sets the pool size; n < 1 keeps runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithDrainTimeout bounds the post-traversal wait; d <= 0 keeps the default.
func WithDrainTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.drainTimeout = d
		}
	}
}

// WithRecorder attaches a metrics sink.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

func defaultOptions() options {
	return options{
		workers:      runtime.NumCPU(),
		drainTimeout: DefaultDrainTimeout,
		recorder:     nopRecorder{},
	}
}

// Stats summarizes one Run.
//
//   - Files: candidate files dispatched to the pool.
//   - Processed: files a worker finished before the run was sealed.
//   - WithSender: processed files that named a sender.
//   - Edges: edge insertions requested (duplicates included).
//   - FileErrors, DirErrors: unreadable files and unlistable directories.
//   - TimedOut: the drain expired or the context was cancelled.
type Stats struct {
	Files      int
	Processed  int
	WithSender int
	Edges      int
	FileErrors int
	DirErrors  int
	TimedOut   bool
	Duration   time.Duration
}
