package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/helixkg/helix/internal/model"
)

const validLine = `{"subject": "aspirin", "subject_type": "drug", "subject_qualifier": ["low-dose"], "object": "inflammation", "object_type": "symptom", "object_qualifier": null, "relationship": "reduces", "statement_qualifier": ["in mice"]}`

func TestParseTriplesWellFormed(t *testing.T) {
	raw := validLine + "\n\n" +
		`{"subject": "metformin", "subject_type": "drug", "subject_qualifier": null, "object": "gluconeogenesis", "object_type": "biological process", "object_qualifier": null, "relationship": "suppresses", "statement_qualifier": null}` + "\n"

	triples := ParseTriples(raw, zap.NewNop())
	require.Len(t, triples, 2)

	assert.Equal(t, "aspirin", triples[0].Subject)
	assert.Equal(t, []string{"low-dose"}, triples[0].SubjectQualifier)
	assert.Nil(t, triples[0].ObjectQualifier)
	assert.Equal(t, model.StringList{"in mice"}, triples[0].StatementQualifier)

	assert.Equal(t, "metformin", triples[1].Subject)
	assert.Nil(t, triples[1].SubjectQualifier)
	assert.Nil(t, triples[1].StatementQualifier)
}

func TestParseTriplesMixedValidity(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	raw := "Here is a summary of the abstract.\n" +
		validLine + "\n" +
		`{"subject": "truncated`

	triples := ParseTriples(raw, log)
	require.Len(t, triples, 1)
	assert.Equal(t, "aspirin", triples[0].Subject)

	// one warning per discarded line, each carrying the offending text
	entries := logs.FilterMessage("discarding unparseable line").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Here is a summary of the abstract.", entries[0].ContextMap()["line"])
}

func TestParseTriplesEmptyAndBlank(t *testing.T) {
	assert.Empty(t, ParseTriples("", zap.NewNop()))
	assert.Empty(t, ParseTriples("\n\n  \n", zap.NewNop()))
}

func TestParseTriplesStripsFences(t *testing.T) {
	raw := "```json\n" + validLine + "\n```"
	triples := ParseTriples(raw, zap.NewNop())
	require.Len(t, triples, 1)
	assert.Equal(t, "reduces", triples[0].Relationship)
}

func TestParseTriplesMissingFieldsNotValidated(t *testing.T) {
	// structurally valid JSON without a relationship still parses; the
	// ingestor decides what to do with it
	triples := ParseTriples(`{"subject": "aspirin", "object": "cox-2"}`, zap.NewNop())
	require.Len(t, triples, 1)
	assert.Empty(t, triples[0].Relationship)
	assert.Error(t, triples[0].Validate())
}

func TestParseTriplesOrderPreserved(t *testing.T) {
	raw := `{"subject": "a", "object": "b", "relationship": "r1"}` + "\n" +
		`{"subject": "c", "object": "d", "relationship": "r2"}` + "\n" +
		`{"subject": "e", "object": "f", "relationship": "r3"}`

	triples := ParseTriples(raw, zap.NewNop())
	require.Len(t, triples, 3)
	assert.Equal(t, "r1", triples[0].Relationship)
	assert.Equal(t, "r2", triples[1].Relationship)
	assert.Equal(t, "r3", triples[2].Relationship)
}
