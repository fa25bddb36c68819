package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixkg/helix/internal/model"
)

func TestBuildDeterministic(t *testing.T) {
	b := NewBuilder("")
	first := b.Build("Aspirin reduces inflammation", "Low-dose aspirin...")
	second := b.Build("Aspirin reduces inflammation", "Low-dose aspirin...")
	assert.Equal(t, first, second)
}

func TestBuildContainsContract(t *testing.T) {
	b := NewBuilder("")
	p := b.Build("My Title", "My Abstract")

	assert.Contains(t, p, "My Title")
	assert.Contains(t, p, "My Abstract")
	assert.Contains(t, p, "newline-delimited JSON")
	assert.Contains(t, p, "summarize")
	assert.Contains(t, p, "explicit null")

	// full vocabulary enumerated
	for _, typ := range model.EntityTypes {
		assert.Contains(t, p, typ)
	}

	// worked example in the exact output shape
	assert.Contains(t, p, `{"subject": "aspirin"`)
	assert.Contains(t, p, `"object_qualifier": null`)
}

func TestBuildCustomTemplate(t *testing.T) {
	b := NewBuilder("types: %s | t: %s | a: %s")
	p := b.Build("T", "A")
	assert.True(t, strings.HasSuffix(p, "| t: T | a: A"))
	assert.Contains(t, p, "gene")
}
