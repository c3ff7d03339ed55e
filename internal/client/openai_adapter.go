package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"llm-calculator/internal/config"
	"llm-calculator/internal/types"

	"github.com/openai/openai-go"
)

// OpenAIAdapter implements llm.Client interface using OpenAI official client
type OpenAIAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client *openai.Client, model string) *OpenAIAdapter {
	return &OpenAIAdapter{
		client: client,
		model:  model,
	}
}

// SetTimeout sets the request timeout. Zero means no timeout.
func (a *OpenAIAdapter) SetTimeout(d time.Duration) {
	a.timeout = d
}

// Name returns the model name
func (a *OpenAIAdapter) Name() string {
	return "openai-" + a.model
}

// Ping sends a minimal request to verify connection
func (a *OpenAIAdapter) Ping(ctx context.Context) error {
	slog.Info("checking llm connection...")
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("hello"),
		},
		MaxTokens: openai.Int(1),
	}
	_, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return fmt.Errorf("llm ping failed: %w", a.wrapError(err))
	}
	slog.Info("llm connection verified")
	return nil
}

// SimpleTextQuery sends a single text request and returns the text response.
func (a *OpenAIAdapter) SimpleTextQuery(ctx context.Context, systemPrompt, userInput string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userInput))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: messages,
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", a.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no openai response")
	}

	return resp.Choices[0].Message.Content, nil
}

// wrapError converts openai API errors into types.ProviderError carrying the provider's message
func (a *OpenAIAdapter) wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		detail := probeMessage(apiErr.RawJSON(), config.ProviderErrorMessagePaths)
		if detail == "" {
			detail = apiErr.Message
		}
		return types.NewProviderError(config.ProviderOpenAI, apiErr.StatusCode, detail, err)
	}

	return fmt.Errorf("openai request: %w", err)
}
