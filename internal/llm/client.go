package llm

import (
	"context"
)

// Options are the generation controls sent with every request. A nil Options
// means "use defaults".
type Options struct {
	MaxTokens     int
	Temperature   float32
	TopP          float32
	TopK          int
	StopSequences []string
}

// DefaultOptions caps output at 4000 tokens and keeps sampling near-deterministic.
func DefaultOptions() Options {
	return Options{MaxTokens: 4000, Temperature: 0.1}
}

func (o *Options) orDefault() Options {
	if o == nil {
		return DefaultOptions()
	}
	opts := *o
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 4000
	}
	return opts
}

// Client sends one prompt to a hosted model and returns its raw text output.
// Errors are *Error values carrying a Kind (see errors.go).
type Client interface {
	Generate(ctx context.Context, prompt string, opts *Options) (string, error)
}
