package graph

const (
	// Entity nodes are keyed by exact name. Type is set ON CREATE only: a
	// later triple reusing the name with a different type never rewrites it.
	MergeEntityQuery = `
		MERGE (n:Entity {name: $name})
		ON CREATE SET n.type = $type,
			n.created_at = $created_at
		RETURN n.name AS name
	`

	// Cypher cannot bind a relationship type as a parameter, so the
	// normalized edge type is interpolated into the text. NormalizeEdgeType
	// only emits [A-Z0-9_]+, which keeps the interpolation inert.
	// Qualifier and provenance properties are ON CREATE only: re-ingesting
	// the same (subject, type, object) edge does not touch them.
	MergeEdgeQueryTemplate = `
		MATCH (s:Entity {name: $subject})
		MATCH (o:Entity {name: $object})
		MERGE (s)-[r:%s]->(o)
		ON CREATE SET r.subject_qualifier = $subject_qualifier,
			r.object_qualifier = $object_qualifier,
			r.statement_qualifier = $statement_qualifier,
			r.source_title = $source_title,
			r.run_id = $run_id,
			r.created_at = $created_at
		RETURN type(r) AS type
	`
)
