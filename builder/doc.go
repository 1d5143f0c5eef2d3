// Package builder produces deterministic core.Graph fixtures for tests,
// examples and benchmarks of the communication-graph pipeline.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates the
//     graph, resolves options and applies constructors in order.
//   - Topologies: Path, Cycle, Star, Complete, RandomSparse, Isolated.
//   - Scoped(prefix, c): namespaces a constructor's IDs so several
//     topologies can share one graph as separate teams.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, SymbolNumberIDFn,
//     EmailIDFn.
//   - Edge direction (WithDirection): every undirected link is emitted as
//     a sent pair forward, backward, both ways or alternating. Connectivity
//     must not depend on this choice; degree queries do.
//
// Guarantees:
//
//   - Same inputs, options and seed give identical graphs.
//   - Re-running a constructor on the same graph adds nothing (set semantics).
//   - Invalid parameters return sentinel errors wrapped with the method name;
//     option constructors panic on nil functions.
package builder
