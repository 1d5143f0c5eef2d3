// Package commgraph builds the communication graph of a mail corpus and finds
// its teams and connectors.
//
// What is commgraph?
//
//	A sender -> recipient graph built concurrently from a directory of raw
//	message files, analysed once into:
//		• teams: connected components over the undirected union of edges
//		• connectors: people whose removal splits their team
//	and then queried per address (degrees, team size, shortest chain).
//
// Packages
//
//	core/         Graph: vertices, sent/received adjacency, one RWMutex
//	extract/      ISO-8859-1 decoding and sender/recipient extraction
//	ingest/       breadth-first walk, bounded worker pool, drain timeout
//	connectivity/ iterative DFS: components, connectors, brute-force Verify
//	bfs/          breadth-first reachability with exclusions
//	query/        read-only lookups over a graph and its analysis
//	console/      connector listing, run report, interactive session
//	builder/      deterministic fixture graphs for tests and benchmarks
//	config/       YAML configuration with validation
//	logging/      slog construction and context propagation
//	metrics/      Prometheus collectors on a private registry
//	telemetry/    OpenTelemetry tracer provider
//	graphdb/      Neo4j export
//	app/          pipeline wiring
//	cmd/commgraph the command line
//
// Quick start
//
//	g := core.NewGraph()
//	ex, _ := extract.New("enron.com")
//	stats, err := ingest.New(g, ex, ingest.WithWorkers(8)).Run(ctx, "./maildir")
//	res, err := connectivity.Analyze(ctx, g)
//	fmt.Println(res.Connectors)
package commgraph
