package llm

import "context"

// LLMClient defines the interface for generation API operations.
type LLMClient interface {
	// Complete sends a rendered prompt and returns the completion text.
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Ensure Client implements LLMClient interface.
var _ LLMClient = (*Client)(nil)
