package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commgraph/core"
	"github.com/katalvlaran/commgraph/extract"
	"github.com/katalvlaran/commgraph/ingest"
	"github.com/katalvlaran/commgraph/logging"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newExtractor(t *testing.T) *extract.Extractor {
	t.Helper()
	ex, err := extract.New(extract.DefaultDomain)
	require.NoError(t, err)
	return ex
}

func quietCtx() context.Context {
	return logging.WithLogger(context.Background(), logging.Discard())
}

// countingRecorder tallies Recorder callbacks.
type countingRecorder struct {
	dispatched, processed, failed, dirs, timeouts atomic.Int64
}

func (c *countingRecorder) FileDispatched()         { c.dispatched.Add(1) }
func (c *countingRecorder) FileProcessed(bool, int) { c.processed.Add(1) }
func (c *countingRecorder) FileFailed()             { c.failed.Add(1) }
func (c *countingRecorder) DirFailed()              { c.dirs.Add(1) }
func (c *countingRecorder) DrainTimedOut()          { c.timeouts.Add(1) }

func TestRun_RootErrors(t *testing.T) {
	g := core.NewGraph()
	in := ingest.New(g, newExtractor(t))

	_, err := in.Run(quietCtx(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ingest.ErrRootNotFound)

	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, "From: a@enron.com\nTo: b@enron.com\n")
	_, err = in.Run(quietCtx(), file)
	assert.ErrorIs(t, err, ingest.ErrRootNotDir)
	assert.Equal(t, 0, g.VertexCount(), "nothing ingested on a fatal root error")

	_, err = ingest.New(nil, newExtractor(t)).Run(quietCtx(), t.TempDir())
	assert.ErrorIs(t, err, ingest.ErrNilGraph)
}

// TestRun_NestedTree ingests files at several depths.
func TestRun_NestedTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "allen-p", "sent", "1."), "From: phillip.allen@enron.com\nTo: tim.belden@enron.com\n")
	writeFile(t, filepath.Join(root, "allen-p", "inbox", "deep", "er", "2."), "From: tim.belden@enron.com\nTo: phillip.allen@enron.com, john.arnold@enron.com\n")
	writeFile(t, filepath.Join(root, "3."), "From: john.arnold@enron.com\nCc: tim.belden@enron.com\n")
	writeFile(t, filepath.Join(root, "nosender."), "To: ghost@enron.com\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "dir"), 0o755))

	g := core.NewGraph()
	rec := &countingRecorder{}
	stats, err := ingest.New(g, newExtractor(t), ingest.WithWorkers(3), ingest.WithRecorder(rec)).Run(quietCtx(), root)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Files)
	assert.Equal(t, 4, stats.Processed)
	assert.Equal(t, 3, stats.WithSender)
	assert.Equal(t, 4, stats.Edges)
	assert.Zero(t, stats.FileErrors)
	assert.Zero(t, stats.DirErrors)
	assert.False(t, stats.TimedOut)

	assert.Equal(t, []string{"john.arnold@enron.com", "phillip.allen@enron.com", "tim.belden@enron.com"}, g.Vertices())
	assert.False(t, g.HasVertex("ghost@enron.com"), "pre-sender tokens are discarded")
	assert.Equal(t, 2, g.SentDegree("tim.belden@enron.com"))
	assert.Equal(t, 2, g.ReceivedDegree("tim.belden@enron.com"))

	assert.EqualValues(t, 4, rec.dispatched.Load())
	assert.EqualValues(t, 4, rec.processed.Load())
}

// TestRun_DuplicateMessages collapses repeated pairs across files.
func TestRun_DuplicateMessages(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 50; i++ {
		writeFile(t, filepath.Join(root, "d", string(rune('a'+i%26))+string(rune('a'+i/26))), "From: a@enron.com\nTo: b@enron.com\n")
	}

	g := core.NewGraph()
	stats, err := ingest.New(g, newExtractor(t), ingest.WithWorkers(8)).Run(quietCtx(), root)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.Processed)
	assert.Equal(t, 50, stats.Edges)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestRun_UnreadableFile skips a dangling symlink and keeps going.
func TestRun_UnreadableFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok"), "From: a@enron.com\nTo: b@enron.com\n")
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "dangling")))

	g := core.NewGraph()
	rec := &countingRecorder{}
	stats, err := ingest.New(g, newExtractor(t), ingest.WithRecorder(rec)).Run(quietCtx(), root)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.FileErrors)
	assert.Equal(t, 1, stats.WithSender)
	assert.EqualValues(t, 1, rec.failed.Load())
	assert.True(t, g.HasEdge("a@enron.com", "b@enron.com"))
}

// TestRun_SymlinkedDirNotFollowed ignores links to directories.
func TestRun_SymlinkedDirNotFollowed(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "m"), "From: x@enron.com\nTo: y@enron.com\n")
	require.NoError(t, os.Symlink(other, filepath.Join(root, "link")))

	g := core.NewGraph()
	stats, err := ingest.New(g, newExtractor(t)).Run(quietCtx(), root)
	require.NoError(t, err)
	assert.Zero(t, stats.Files)
	assert.Zero(t, g.VertexCount())
}

// TestRun_UnlistableDir skips the subtree but ingests siblings.
func TestRun_UnlistableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "locked", "m"), "From: x@enron.com\nTo: y@enron.com\n")
	writeFile(t, filepath.Join(root, "open", "m"), "From: a@enron.com\nTo: b@enron.com\n")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	g := core.NewGraph()
	stats, err := ingest.New(g, newExtractor(t)).Run(quietCtx(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DirErrors)
	assert.Equal(t, 1, stats.WithSender)
	assert.False(t, g.HasVertex("x@enron.com"))
	assert.True(t, g.HasVertex("a@enron.com"))
}

// blockingExtractor parks every call until release is closed.
type blockingExtractor struct {
	inner   ingest.Extractor
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingExtractor) Extract(raw []byte) extract.Message {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return b.inner.Extract(raw)
}

// TestRun_DrainTimeoutSeals returns a partial graph and ignores late workers.
func TestRun_DrainTimeoutSeals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "slow"), "From: late@enron.com\nTo: never@enron.com\n")

	ex := &blockingExtractor{
		inner:   newExtractor(t),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	g := core.NewGraph()
	rec := &countingRecorder{}
	stats, err := ingest.New(g, ex,
		ingest.WithDrainTimeout(50*time.Millisecond),
		ingest.WithRecorder(rec),
	).Run(quietCtx(), root)
	require.NoError(t, err)

	assert.True(t, stats.TimedOut)
	assert.Equal(t, 1, stats.Files)
	assert.Zero(t, stats.Processed)
	assert.EqualValues(t, 1, rec.timeouts.Load())

	close(ex.release)
	assert.Never(t, func() bool { return g.VertexCount() > 0 }, 200*time.Millisecond, 10*time.Millisecond,
		"an abandoned worker must not write after the seal")
}

// TestRun_DrainTimeoutSaturatedPool keeps the drain bound when every worker
// is stuck and more files are still waiting.
func TestRun_DrainTimeoutSaturatedPool(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeFile(t, filepath.Join(root, name), "From: x@enron.com\nTo: y@enron.com\n")
	}

	ex := &blockingExtractor{
		inner:   newExtractor(t),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	t.Cleanup(func() { close(ex.release) })

	g := core.NewGraph()
	type outcome struct {
		stats *ingest.Stats
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		stats, err := ingest.New(g, ex,
			ingest.WithWorkers(1),
			ingest.WithDrainTimeout(100*time.Millisecond),
		).Run(quietCtx(), root)
		done <- outcome{stats, err}
	}()

	var got outcome
	select {
	case got = <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after the drain timeout")
	}
	require.NoError(t, got.err)
	assert.True(t, got.stats.TimedOut)
	assert.Equal(t, 3, got.stats.Files)
	assert.Zero(t, got.stats.Processed)
	assert.Zero(t, g.VertexCount())
}

// TestRun_ContextCancelled behaves like a timeout.
func TestRun_ContextCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "m"), "From: a@enron.com\nTo: b@enron.com\n")

	ex := &blockingExtractor{
		inner:   newExtractor(t),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	defer close(ex.release)

	ctx, cancel := context.WithCancel(quietCtx())
	go func() {
		<-ex.entered
		cancel()
	}()

	g := core.NewGraph()
	stats, err := ingest.New(g, ex).Run(ctx, root)
	require.NoError(t, err)
	assert.True(t, stats.TimedOut)
	assert.Zero(t, g.VertexCount())
}

func TestRun_EmptyRoot(t *testing.T) {
	g := core.NewGraph()
	stats, err := ingest.New(g, newExtractor(t)).Run(quietCtx(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ingest.Stats{Duration: stats.Duration}, *stats)
}
