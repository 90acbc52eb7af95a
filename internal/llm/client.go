package llm

import (
	"context"
	"time"
)

// Client defines the raw transport to an LLM provider. It sends a single
// system+user instruction pair and returns the model's text verbatim.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is one instruction for the model.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Config holds configuration for the oracle client.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	Endpoint   string // override the provider's default API endpoint
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	RateLimit  int
}
