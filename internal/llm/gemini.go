package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, opts *Options) (string, error) {
	o := opts.orDefault()

	model := c.client.GenerativeModel(c.model)
	model.SetMaxOutputTokens(int32(o.MaxTokens))
	if o.Temperature > 0 {
		model.SetTemperature(o.Temperature)
	}
	if o.TopP > 0 {
		model.SetTopP(o.TopP)
	}
	if o.TopK > 0 {
		model.SetTopK(int32(o.TopK))
	}
	model.StopSequences = o.StopSequences

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGemini(err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no response candidates or content")
}
