package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)

	require.NoError(t, json.Unmarshal([]byte(`"in mice"`), &s))
	assert.Equal(t, StringList{"in mice"}, s)

	require.NoError(t, json.Unmarshal([]byte(`["in mice", "low dose"]`), &s))
	assert.Equal(t, StringList{"in mice", "low dose"}, s)

	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestStringListMarshalNullRoundTrip(t *testing.T) {
	out, err := json.Marshal(Triple{Subject: "aspirin"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"statement_qualifier":null`)
	assert.Contains(t, string(out), `"subject_qualifier":null`)
}

func TestTripleValidate(t *testing.T) {
	valid := Triple{Subject: "aspirin", Object: "inflammation", Relationship: "reduces"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Triple{Object: "x", Relationship: "r"}.Validate())
	assert.Error(t, Triple{Subject: "x", Relationship: "r"}.Validate())
	assert.Error(t, Triple{Subject: "x", Object: "y"}.Validate())
}

func TestEntityTypesVocabulary(t *testing.T) {
	assert.Len(t, EntityTypes, 21)
	assert.Contains(t, EntityTypes, "gene")
	assert.Contains(t, EntityTypes, "disease")
	assert.Contains(t, EntityTypes, "other")
}
