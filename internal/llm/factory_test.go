package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixkg/helix/internal/config"
)

func TestNewClientProviders(t *testing.T) {
	ctx := context.Background()

	c, err := NewClient(ctx, config.LLMConfig{Provider: "claude", Model: "claude-3-5-haiku-latest", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "openai", Model: "gpt-4o-mini", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	_, err = NewClient(ctx, config.LLMConfig{Provider: "watson"})
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	o := OptionsFromConfig(config.LLMConfig{MaxTokens: 2000, Temperature: 0.3, TopP: 0.9, TopK: 40, StopSequences: []string{"END"}})
	assert.Equal(t, 2000, o.MaxTokens)
	assert.InDelta(t, 0.3, o.Temperature, 1e-6)
	assert.Equal(t, []string{"END"}, o.StopSequences)

	o = OptionsFromConfig(config.LLMConfig{})
	assert.Equal(t, 4000, o.MaxTokens)
}
