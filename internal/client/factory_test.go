package client

import (
	"context"
	"testing"

	"llm-calculator/internal/config"
)

func TestNewLLM_Providers(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		wantName string
	}{
		{config.ProviderOpenAI, "gpt-3.5-turbo", "openai-gpt-3.5-turbo"},
		{config.ProviderLangChain, "gpt-3.5-turbo", "langchain-gpt-3.5-turbo"},
		{config.ProviderGemini, "gemini-2.0-flash", "gemini-gemini-2.0-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.LLM.Provider = tt.provider
			cfg.LLM.Model = tt.model
			cfg.LLM.Endpoint = "http://localhost:1/v1"
			cfg.LLM.APIKey = "test-key"

			llmClient, err := NewLLM(context.Background(), cfg)
			if err != nil {
				t.Fatalf("NewLLM failed: %v", err)
			}
			if llmClient.Name() != tt.wantName {
				t.Errorf("Expected %s, got %s", tt.wantName, llmClient.Name())
			}
		})
	}
}

func TestNewLLM_UnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "mystery"

	if _, err := NewLLM(context.Background(), cfg); err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestNewLLM_InvalidExtraBody(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = config.ProviderOpenAI
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.ExtraBody = `["not","an","object"]`

	if _, err := NewLLM(context.Background(), cfg); err == nil {
		t.Fatal("Expected error for non-object extra body")
	}
}
