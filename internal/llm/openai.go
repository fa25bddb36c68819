package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey string, model string, baseURL string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func isInstructModel(model string) bool {
	return strings.Contains(model, "instruct") ||
		strings.HasPrefix(model, "davinci") ||
		strings.HasPrefix(model, "babbage")
}

// Generate uses the chat API for conversational models and the legacy
// completions API for instruct-style ones. TopK is not part of the OpenAI API
// and is ignored here.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, opts *Options) (string, error) {
	o := opts.orDefault()

	if isInstructModel(c.model) {
		return c.complete(ctx, prompt, o)
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
		TopP:        o.TopP,
		Stop:        o.StopSequences,
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAI(err)
	}
	if len(resp.Choices) > 0 {
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("no response choices")
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string, o Options) (string, error) {
	req := openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
		TopP:        o.TopP,
		Stop:        o.StopSequences,
	}
	resp, err := c.client.CreateCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAI(err)
	}
	if len(resp.Choices) > 0 {
		return resp.Choices[0].Text, nil
	}
	return "", fmt.Errorf("no response choices")
}
