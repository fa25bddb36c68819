package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
)

type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey string, model string, baseURL string) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

// legacy claude-2 / claude-instant models speak the flat-prompt Complete API
// rather than the role/content Messages API.
func isLegacyCompletionModel(model string) bool {
	return strings.HasPrefix(model, "claude-2") || strings.Contains(model, "instant")
}

func (c *ClaudeClient) Generate(ctx context.Context, prompt string, opts *Options) (string, error) {
	o := opts.orDefault()

	if isLegacyCompletionModel(c.model) {
		return c.complete(ctx, prompt, o)
	}

	req := anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
		MaxTokens:     o.MaxTokens,
		StopSequences: o.StopSequences,
	}
	if o.Temperature > 0 {
		t := o.Temperature
		req.Temperature = &t
	}
	if o.TopP > 0 {
		p := o.TopP
		req.TopP = &p
	}
	if o.TopK > 0 {
		k := o.TopK
		req.TopK = &k
	}

	resp, err := c.client.CreateMessages(ctx, req)
	if err != nil {
		return "", classifyAnthropic(err)
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return *resp.Content[0].Text, nil
	}
	return "", fmt.Errorf("no response content")
}

func (c *ClaudeClient) complete(ctx context.Context, prompt string, o Options) (string, error) {
	req := anthropic.CompleteRequest{
		Model:             anthropic.Model(c.model),
		Prompt:            fmt.Sprintf("\n\nHuman: %s\n\nAssistant:", prompt),
		MaxTokensToSample: o.MaxTokens,
		StopSequences:     o.StopSequences,
	}
	if o.Temperature > 0 {
		t := o.Temperature
		req.Temperature = &t
	}
	if o.TopP > 0 {
		p := o.TopP
		req.TopP = &p
	}
	if o.TopK > 0 {
		k := o.TopK
		req.TopK = &k
	}

	resp, err := c.client.CreateComplete(ctx, req)
	if err != nil {
		return "", classifyAnthropic(err)
	}
	return resp.Completion, nil
}
