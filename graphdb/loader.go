// SPDX-License-Identifier: MIT

package graphdb

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/commgraph/connectivity"
	"github.com/katalvlaran/commgraph/core"
	"github.com/katalvlaran/commgraph/logging"
)

const (
	cypherIndex = "CREATE INDEX person_address IF NOT EXISTS FOR (p:Person) ON (p.address)"

	cypherPersons = `UNWIND $batch AS row
		 MERGE (p:Person {address: row.address})
		 SET p.team = row.team, p.connector = row.connector, p.run_id = row.run_id`

	cypherSent = `UNWIND $batch AS row
		 MATCH (a:Person {address: row.from}), (b:Person {address: row.to})
		 MERGE (a)-[:SENT]->(b)`
)

// Executor runs one Cypher statement.
type Executor interface {
	Run(ctx context.Context, cypher string, params map[string]any) error
}

// Loader writes graphs through an Executor.
type Loader struct {
	exec  Executor
	close func(context.Context) error
}

// New returns a Loader over exec; Close is a no-op.
func New(exec Executor) *Loader {
	return &Loader{exec: exec, close: func(context.Context) error { return nil }}
}

type driverExecutor struct {
	driver   neo4j.DriverWithContext
	database string
}

func (d driverExecutor) Run(ctx context.Context, cypher string, params map[string]any) error {
	_, err := neo4j.ExecuteQuery(ctx, d.driver, cypher, params,
		neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(d.database))
	return err
}

// NewLoader connects to Neo4j at uri and checks connectivity. An empty
// database selects the server default.
func NewLoader(ctx context.Context, uri, user, password, database string) (*Loader, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("graphdb: create driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graphdb: connect %s: %w", uri, err)
	}

	return &Loader{
		exec:  driverExecutor{driver: driver, database: database},
		close: driver.Close,
	}, nil
}

// Close releases the driver.
func (l *Loader) Close(ctx context.Context) error {
	return l.close(ctx)
}

// Export writes every vertex and sent edge of g, annotated with res.
func (l *Loader) Export(ctx context.Context, g *core.Graph, res *connectivity.Result, runID string) (err error) {
	ctx, span := otel.Tracer("commgraph/graphdb").Start(ctx, "graphdb.Export")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	log := logging.FromContext(ctx)

	if err = l.exec.Run(ctx, cypherIndex, nil); err != nil {
		return fmt.Errorf("graphdb: create index: %w", err)
	}

	persons := PersonRows(g, res, runID)
	if err = l.load(ctx, cypherPersons, persons); err != nil {
		return fmt.Errorf("graphdb: load persons: %w", err)
	}
	sent := SentRows(g)
	if err = l.load(ctx, cypherSent, sent); err != nil {
		return fmt.Errorf("graphdb: load sent edges: %w", err)
	}

	span.SetAttributes(
		attribute.Int("graphdb.persons", len(persons)),
		attribute.Int("graphdb.sent", len(sent)),
	)
	log.Info("exported graph to neo4j", "persons", len(persons), "sent", len(sent))

	return nil
}

func (l *Loader) load(ctx context.Context, cypher string, rows []Row) error {
	for _, batch := range Batches(rows, BatchSize) {
		if err := l.exec.Run(ctx, cypher, map[string]any{"batch": batch}); err != nil {
			return err
		}
	}
	return nil
}
