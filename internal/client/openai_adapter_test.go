package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"llm-calculator/internal/types"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

func chatCompletionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": 1677652288,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     9,
			"completion_tokens": 1,
			"total_tokens":      10,
		},
	}
}

func newTestAdapter(t *testing.T, url string) *OpenAIAdapter {
	t.Helper()
	client := openai.NewClient(
		option.WithBaseURL(url),
		option.WithAPIKey("test-key"),
		option.WithMaxRetries(0),
	)
	return NewOpenAIAdapter(&client, "gpt-3.5-turbo")
}

func TestOpenAIAdapter_SimpleTextQuery(t *testing.T) {
	var reqBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionResponse("  4\n"))
	}))
	defer ts.Close()

	adapter := newTestAdapter(t, ts.URL)

	got, err := adapter.SimpleTextQuery(context.Background(), "You are a helpful assistant.", "2+2")
	if err != nil {
		t.Fatalf("SimpleTextQuery failed: %v", err)
	}
	// Trimming belongs to the completion layer; the adapter returns content as-is.
	if got != "  4\n" {
		t.Errorf("Expected raw content, got %q", got)
	}

	if reqBody.Model != "gpt-3.5-turbo" {
		t.Errorf("Expected model gpt-3.5-turbo, got %s", reqBody.Model)
	}
	if len(reqBody.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(reqBody.Messages))
	}
	if reqBody.Messages[0].Role != "system" || reqBody.Messages[0].Content != "You are a helpful assistant." {
		t.Errorf("Unexpected system message: %+v", reqBody.Messages[0])
	}
	if reqBody.Messages[1].Role != "user" || reqBody.Messages[1].Content != "2+2" {
		t.Errorf("Unexpected user message: %+v", reqBody.Messages[1])
	}
}

func TestOpenAIAdapter_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := chatCompletionResponse("")
		resp["choices"] = []map[string]any{}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	adapter := newTestAdapter(t, ts.URL)

	if _, err := adapter.SimpleTextQuery(context.Background(), "", "2+2"); err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestOpenAIAdapter_ProviderError(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer ts.Close()

	adapter := newTestAdapter(t, ts.URL)

	_, err := adapter.SimpleTextQuery(context.Background(), "", "2+2")
	if err == nil {
		t.Fatal("Expected error")
	}

	var provErr *types.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %T: %v", err, err)
	}
	if provErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", provErr.StatusCode)
	}
	if provErr.Detail != "Incorrect API key provided" {
		t.Errorf("Expected provider message, got %q", provErr.Detail)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one request, got %d", calls)
	}
}

func TestOpenAIAdapter_Name(t *testing.T) {
	adapter := NewOpenAIAdapter(nil, "gpt-4o")
	if adapter.Name() != "openai-gpt-4o" {
		t.Errorf("Unexpected name %q", adapter.Name())
	}
}
