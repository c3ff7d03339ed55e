package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"llm-calculator/internal/config"
	"llm-calculator/internal/types"

	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// GeminiAdapter implements llm.Client on top of the Google Gen AI SDK
type GeminiAdapter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiAdapter creates a Gemini API client for the given model.
// An empty endpoint selects the SDK default. extraBody is merged into every request body by the SDK.
func NewGeminiAdapter(ctx context.Context, endpoint, apiKey, model, extraBody string) (*GeminiAdapter, error) {
	httpOpts := genai.HTTPOptions{BaseURL: endpoint}
	if extraBody != "" {
		if extra, ok := gjson.Parse(extraBody).Value().(map[string]any); ok {
			httpOpts.ExtraBody = extra
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiAdapter{client: client, model: model}, nil
}

// SetTimeout sets the request timeout. Zero means no timeout.
func (a *GeminiAdapter) SetTimeout(d time.Duration) {
	a.timeout = d
}

// Name returns the model name
func (a *GeminiAdapter) Name() string {
	return "gemini-" + a.model
}

// SimpleTextQuery sends the system prompt as a system instruction and the user input as content.
func (a *GeminiAdapter) SimpleTextQuery(ctx context.Context, systemPrompt, userInput string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	genCfg := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(userInput), genCfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", types.NewProviderError(config.ProviderGemini, apiErr.Code, apiErr.Message, err)
		}
		return "", fmt.Errorf("gemini request: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no gemini response")
	}

	return resp.Text(), nil
}
