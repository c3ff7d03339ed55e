package llm

import (
	"context"
)

// Client defines the interface for interacting with a chat-completion provider.
// Each call is a fresh conversation: one optional system message and one user message.
type Client interface {
	// SimpleTextQuery sends a single text request and returns the first choice's text.
	SimpleTextQuery(ctx context.Context, systemPrompt, userInput string) (string, error)
	// Name identifies the provider and model, for logs.
	Name() string
}
