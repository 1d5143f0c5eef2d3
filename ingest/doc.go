// Package ingest populates a core.Graph from a directory tree of message
// files.
//
// One traversal goroutine walks the tree breadth-first and pushes every
// candidate file onto an unbounded queue drained by a fixed set of errgroup
// workers, so the walk never waits on a busy pool. Each worker reads the file, extracts its sender and recipients and applies the
// whole batch to the graph under one shared mutex, which also guards the
// run counters.
//
// Once traversal ends the pool gets a bounded drain (WithDrainTimeout,
// default 60s). On expiry, or when the parent context is cancelled, the
// pool context is cancelled and the run is sealed under the shared mutex:
// workers still running afterwards cannot write to the graph. The partial
// graph is then returned with Stats.TimedOut set. There are no retries.
//
// Failure policy:
//
//   - Missing root or a root that is not a directory: ErrRootNotFound /
//     ErrRootNotDir, nothing ingested.
//   - Unlistable directory: WARN, subtree skipped, siblings continue.
//   - Unreadable file: WARN, file skipped.
//   - File without a sender: contributes nothing.
package ingest
