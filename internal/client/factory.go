package client

import (
	"context"
	"fmt"

	"llm-calculator/internal/config"
	"llm-calculator/internal/llm"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// NewLLM creates a new LLM instance based on configuration.
// The returned client is safe for concurrent use as long as its configuration
// is not modified after creation.
func NewLLM(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if err := ValidateExtraBody(cfg.LLM.ExtraBody); err != nil {
		return nil, err
	}

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI, "":
		opts := []option.RequestOption{
			option.WithAPIKey(cfg.LLM.APIKey),
			option.WithBaseURL(cfg.LLM.Endpoint),
			// A failed calculation is reported, never retried.
			option.WithMaxRetries(0),
		}
		if httpClient := newHTTPClient(cfg.LLM.ExtraBody); httpClient != nil {
			opts = append(opts, option.WithHTTPClient(httpClient))
		}
		client := openai.NewClient(opts...)
		adapter := NewOpenAIAdapter(&client, cfg.LLM.Model)
		adapter.SetTimeout(cfg.LLM.Timeout)
		return adapter, nil

	case config.ProviderGemini:
		adapter, err := NewGeminiAdapter(ctx, cfg.LLM.Endpoint, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.ExtraBody)
		if err != nil {
			return nil, err
		}
		adapter.SetTimeout(cfg.LLM.Timeout)
		return adapter, nil

	case config.ProviderLangChain:
		adapter, err := NewLangChainAdapter(cfg.LLM.Endpoint, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.ExtraBody)
		if err != nil {
			return nil, err
		}
		adapter.SetTimeout(cfg.LLM.Timeout)
		return adapter, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.LLM.Provider)
	}
}
