package completion

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"llm-calculator/internal/client"
	"llm-calculator/internal/config"

	"github.com/joho/godotenv"
)

// TestQuery_LiveProvider runs one real evaluation against the configured provider.
// It is skipped unless an API key is available in the environment or the repo's .env.
func TestQuery_LiveProvider(t *testing.T) {
	rootDir, _ := filepath.Abs("../../")
	_ = godotenv.Load(filepath.Join(rootDir, ".env"))
	t.Setenv("CONFIG_PATH", filepath.Join(rootDir, "config.yaml"))

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LLM.APIKey == "" {
		t.Skip("Skipping integration test: LLM_API_KEY not set in Config or Env")
	}

	llmClient, err := client.NewLLM(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewLLM: %v", err)
	}

	got := NewClient(llmClient).Query(context.Background(), "2+2", Evaluate)
	if strings.HasPrefix(got, config.PrefixError) {
		t.Fatalf("live query failed: %s", got)
	}
	if !strings.Contains(got, "4") {
		t.Errorf("expected an answer containing 4, got %q", got)
	}
}
