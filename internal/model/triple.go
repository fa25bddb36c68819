package model

import (
	"encoding/json"
	"fmt"
)

// Record is one publication row from the tabular input.
type Record struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
}

// StringList decodes a JSON value that may be null, a single string, or an
// array of strings. The model is inconsistent about statement qualifiers, so
// both shapes are accepted; a bare string becomes a one-element list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*s = StringList(many)
	return nil
}

func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal([]string(s))
}

// Triple is one extracted fact, matching the JSON-Lines wire format emitted
// by the extraction prompt. Qualifier fields are nil when the model emits
// null; type fields are advisory and checked nowhere.
type Triple struct {
	Subject            string     `json:"subject"`
	SubjectType        string     `json:"subject_type"`
	SubjectQualifier   []string   `json:"subject_qualifier"`
	Object             string     `json:"object"`
	ObjectType         string     `json:"object_type"`
	ObjectQualifier    []string   `json:"object_qualifier"`
	Relationship       string     `json:"relationship"`
	StatementQualifier StringList `json:"statement_qualifier"`
}

// Validate reports whether the triple carries enough structure to be stored.
// The parser deliberately skips this check; the ingestor calls it before
// issuing any graph operation.
func (t Triple) Validate() error {
	if t.Subject == "" {
		return fmt.Errorf("triple has empty subject")
	}
	if t.Object == "" {
		return fmt.Errorf("triple has empty object")
	}
	if t.Relationship == "" {
		return fmt.Errorf("triple %q -> %q has empty relationship", t.Subject, t.Object)
	}
	return nil
}

// EntityTypes is the closed vocabulary of category labels the prompt offers
// the model. Advisory only: nothing rejects a triple with a label outside it.
var EntityTypes = []string{
	"gene",
	"protein",
	"enzyme",
	"chemical",
	"drug",
	"disease",
	"symptom",
	"phenotype",
	"pathway",
	"biological process",
	"molecular function",
	"cell type",
	"cell line",
	"tissue",
	"organ",
	"organism",
	"genetic variant",
	"anatomical structure",
	"exposure",
	"medical procedure",
	"other",
}
