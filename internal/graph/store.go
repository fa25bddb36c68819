package graph

import (
	"context"
	"fmt"
	"time"
)

// Relationship is one typed edge ready for storage: both endpoints by entity
// name, the normalized edge type, and the create-only properties.
type Relationship struct {
	Subject            string
	Type               string
	Object             string
	SubjectQualifier   []string
	ObjectQualifier    []string
	StatementQualifier []string
	SourceTitle        string
	RunID              string
}

// Store is the merge-on-create contract the ingestor needs from any backing
// graph store: upserts keyed by name (nodes) or subject/type/object (edges),
// with semantic properties set only when the key did not previously exist.
type Store interface {
	MergeEntity(ctx context.Context, name, entityType string) error
	MergeRelationship(ctx context.Context, rel Relationship) error
}

// CypherStore implements Store with MERGE ... ON CREATE SET statements over a
// bolt connection.
type CypherStore struct {
	driver GraphDriver
}

func NewCypherStore(driver GraphDriver) *CypherStore {
	return &CypherStore{driver: driver}
}

func (s *CypherStore) MergeEntity(ctx context.Context, name, entityType string) error {
	_, err := s.driver.ExecuteQuery(ctx, MergeEntityQuery, map[string]interface{}{
		"name":       name,
		"type":       entityType,
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to merge entity '%s': %w", name, err)
	}
	return nil
}

func (s *CypherStore) MergeRelationship(ctx context.Context, rel Relationship) error {
	query := fmt.Sprintf(MergeEdgeQueryTemplate, rel.Type)
	_, err := s.driver.ExecuteQuery(ctx, query, map[string]interface{}{
		"subject":             rel.Subject,
		"object":              rel.Object,
		"subject_qualifier":   stringList(rel.SubjectQualifier),
		"object_qualifier":    stringList(rel.ObjectQualifier),
		"statement_qualifier": stringList(rel.StatementQualifier),
		"source_title":        rel.SourceTitle,
		"run_id":              rel.RunID,
		"created_at":          time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to merge edge (%s)-[%s]->(%s): %w", rel.Subject, rel.Type, rel.Object, err)
	}
	return nil
}

// stringList converts to the driver's parameter type, keeping nil as null so
// "no qualifier" is stored as absence rather than an empty list.
func stringList(values []string) interface{} {
	if values == nil {
		return nil
	}
	list := make([]interface{}, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}
