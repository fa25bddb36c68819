package prompt

import (
	"fmt"
	"strings"

	"github.com/helixkg/helix/internal/model"
)

// DefaultTemplate is the extraction instruction. Substitution order: entity
// type vocabulary, title, abstract.
const DefaultTemplate = `You are a biomedical information extraction system.

First, read the publication below and summarize its key findings to yourself.
Then extract every subject-predicate-object relationship stated or strongly implied by the text.

Output ONLY newline-delimited JSON: one JSON object per line, no markdown, no prose, no surrounding array.
Each object must have exactly these fields:
  "subject": entity name as it appears in the text
  "subject_type": one of the allowed types listed below
  "subject_qualifier": array of contextual modifier strings, or null if none
  "object": entity name as it appears in the text
  "object_type": one of the allowed types listed below
  "object_qualifier": array of contextual modifier strings, or null if none
  "relationship": short free-text description of how the subject relates to the object
  "statement_qualifier": array of modifiers scoping the whole statement, or null if none

Allowed entity types:
%s

When a qualifier does not apply, emit an explicit null. Never omit a field.

Example output line:
{"subject": "aspirin", "subject_type": "drug", "subject_qualifier": ["low-dose"], "object": "inflammation", "object_type": "symptom", "object_qualifier": null, "relationship": "reduces", "statement_qualifier": ["in mice"]}

Title: %s

Abstract: %s`

// Builder composes extraction prompts. Zero value uses the default template
// and the full type vocabulary.
type Builder struct {
	Template string
	Types    []string
}

func NewBuilder(template string) *Builder {
	return &Builder{Template: template, Types: model.EntityTypes}
}

// Build renders the prompt for one record. Pure string composition; identical
// input always yields an identical prompt.
func (b *Builder) Build(title, abstract string) string {
	tmpl := b.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	types := b.Types
	if len(types) == 0 {
		types = model.EntityTypes
	}

	var list strings.Builder
	for _, t := range types {
		list.WriteString("  - ")
		list.WriteString(t)
		list.WriteString("\n")
	}

	return fmt.Sprintf(tmpl, strings.TrimRight(list.String(), "\n"), title, abstract)
}
