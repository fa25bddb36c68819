package graph

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/helixkg/helix/internal/model"
)

// EdgeTypeSeparator replaces runs of non-alphanumeric characters in a
// free-text relationship when deriving the storage edge type.
const EdgeTypeSeparator = "_"

// NormalizeEdgeType derives a storage-safe edge type from a free-text
// relationship: alphanumerics uppercased, everything else collapsed to a
// single separator, leading/trailing separators trimmed. Fails when nothing
// alphanumeric remains.
func NormalizeEdgeType(relationship string) (string, error) {
	var b strings.Builder
	pendingSep := false
	for _, r := range relationship {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteString(EdgeTypeSeparator)
			}
			pendingSep = false
			b.WriteRune(unicode.ToUpper(r))
		} else {
			pendingSep = true
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("relationship %q contains no alphanumeric characters", relationship)
	}
	return b.String(), nil
}

// Provenance tags every edge created during one run.
type Provenance struct {
	SourceTitle string
	RunID       string
}

// Stats counts the outcome of one Ingest call.
type Stats struct {
	Ingested int
	Skipped  int
}

// Ingestor merges triples into the graph store. Each triple is an independent
// unit of work: a failure is logged with its subject/type/object and the
// remaining triples still go through. No entity cache is kept in process;
// idempotence comes entirely from the store's merge semantics.
type Ingestor struct {
	store Store
	log   *zap.Logger
}

func NewIngestor(store Store, log *zap.Logger) *Ingestor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingestor{store: store, log: log}
}

func (in *Ingestor) Ingest(ctx context.Context, triples []model.Triple, prov Provenance) Stats {
	var stats Stats
	for _, t := range triples {
		if err := in.ingestOne(ctx, t, prov); err != nil {
			in.log.Error("skipping triple",
				zap.String("subject", t.Subject),
				zap.String("relationship", t.Relationship),
				zap.String("object", t.Object),
				zap.Error(err))
			stats.Skipped++
			continue
		}
		stats.Ingested++
	}
	return stats
}

func (in *Ingestor) ingestOne(ctx context.Context, t model.Triple, prov Provenance) error {
	if err := t.Validate(); err != nil {
		return err
	}

	edgeType, err := NormalizeEdgeType(t.Relationship)
	if err != nil {
		return err
	}

	if err := in.store.MergeEntity(ctx, t.Subject, t.SubjectType); err != nil {
		return err
	}
	if err := in.store.MergeEntity(ctx, t.Object, t.ObjectType); err != nil {
		return err
	}

	return in.store.MergeRelationship(ctx, Relationship{
		Subject:            t.Subject,
		Type:               edgeType,
		Object:             t.Object,
		SubjectQualifier:   t.SubjectQualifier,
		ObjectQualifier:    t.ObjectQualifier,
		StatementQualifier: []string(t.StatementQualifier),
		SourceTitle:        prov.SourceTitle,
		RunID:              prov.RunID,
	})
}
