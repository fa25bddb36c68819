package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// BoltDriver connects to a Memgraph or Neo4j instance over bolt. One driver
// is held open for the whole pipeline run and closed on every exit path.
type BoltDriver struct {
	Driver neo4j.DriverWithContext
	log    *zap.Logger
}

func NewBoltDriver(uri, username, password string, log *zap.Logger) (*BoltDriver, error) {
	if log == nil {
		log = zap.NewNop()
	}

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to reach graph store at %s: %w", uri, err)
	}

	log.Info("connected to graph store", zap.String("uri", uri))
	return &BoltDriver{Driver: driver, log: log}, nil
}

func (d *BoltDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *BoltDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// BuildIndices sets up the name index on entities. Memgraph and Neo4j take
// different syntax, so both statements are attempted and failures only warn —
// one of the two will already exist or be unsupported.
func (d *BoltDriver) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE CONSTRAINT entity_name IF NOT EXISTS FOR (n:Entity) REQUIRE n.name IS UNIQUE;",
		"CREATE INDEX ON :Entity(name);",
	}

	for _, q := range queries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			d.log.Warn("failed to create index", zap.String("query", q), zap.Error(err))
		}
	}
	return nil
}
