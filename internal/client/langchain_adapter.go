package client

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// LangChainAdapter implements llm.Client through a langchaingo model.
// Any OpenAI-compatible endpoint reachable by langchaingo can be used.
type LangChainAdapter struct {
	model   llms.Model
	name    string
	timeout time.Duration
}

// NewLangChainAdapter creates a langchaingo OpenAI model for the endpoint.
// extraBody is merged into each request, see ExtraBodyRoundTripper.
func NewLangChainAdapter(endpoint, apiKey, model, extraBody string) (*LangChainAdapter, error) {
	opts := []lcopenai.Option{
		lcopenai.WithModel(model),
		lcopenai.WithBaseURL(endpoint),
		lcopenai.WithToken(apiKey),
	}
	if httpClient := newHTTPClient(extraBody); httpClient != nil {
		opts = append(opts, lcopenai.WithHTTPClient(httpClient))
	}

	lcLLM, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain llm: %w", err)
	}
	return &LangChainAdapter{model: lcLLM, name: model}, nil
}

// SetTimeout sets the request timeout. Zero means no timeout.
func (a *LangChainAdapter) SetTimeout(d time.Duration) {
	a.timeout = d
}

// Name returns the model name
func (a *LangChainAdapter) Name() string {
	return "langchain-" + a.name
}

// SimpleTextQuery sends a system and a human message and returns the first choice.
func (a *LangChainAdapter) SimpleTextQuery(ctx context.Context, systemPrompt, userInput string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var messages []llms.MessageContent
	if systemPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, userInput))

	resp, err := a.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("langchain request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no langchain response")
	}
	return resp.Choices[0].Content, nil
}
