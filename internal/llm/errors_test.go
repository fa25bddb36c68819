package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

func TestKindFromStatus(t *testing.T) {
	cases := map[int]Kind{
		400: KindInvalidRequest,
		401: KindAccessDenied,
		403: KindAccessDenied,
		404: KindModelNotFound,
		422: KindInvalidRequest,
		429: KindRateLimited,
		500: KindUpstreamInternal,
		503: KindUpstreamInternal,
		418: KindUnknown,
	}
	for code, want := range cases {
		assert.Equal(t, want, kindFromStatus(code), "status %d", code)
	}
}

func TestClassifyOpenAI(t *testing.T) {
	err := classifyOpenAI(&openai.APIError{HTTPStatusCode: 429, Message: "slow down"})
	assert.Equal(t, KindRateLimited, err.Kind)
	assert.Contains(t, err.Error(), "rate_limited")

	err = classifyOpenAI(fmt.Errorf("connection refused"))
	assert.Equal(t, KindUnknown, err.Kind)
}

func TestClassifyGemini(t *testing.T) {
	err := classifyGemini(&googleapi.Error{Code: 404, Message: "model not found"})
	assert.Equal(t, KindModelNotFound, err.Kind)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", &Error{Kind: KindAccessDenied, Message: "no"})
	assert.Equal(t, KindAccessDenied, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(fmt.Errorf("plain")))
}

func TestOptionsDefaults(t *testing.T) {
	var opts *Options
	o := opts.orDefault()
	assert.Equal(t, 4000, o.MaxTokens)
	assert.InDelta(t, 0.1, o.Temperature, 1e-6)

	o = (&Options{MaxTokens: 100, Temperature: 0.7}).orDefault()
	assert.Equal(t, 100, o.MaxTokens)
	assert.InDelta(t, 0.7, o.Temperature, 1e-6)

	o = (&Options{Temperature: 0.5}).orDefault()
	assert.Equal(t, 4000, o.MaxTokens, "zero max tokens falls back to default")
}

func TestModelFamilySelection(t *testing.T) {
	assert.True(t, isLegacyCompletionModel("claude-2.1"))
	assert.True(t, isLegacyCompletionModel("claude-instant-1.2"))
	assert.False(t, isLegacyCompletionModel("claude-3-5-haiku-latest"))

	assert.True(t, isInstructModel("gpt-3.5-turbo-instruct"))
	assert.False(t, isInstructModel("gpt-4o-mini"))
}
