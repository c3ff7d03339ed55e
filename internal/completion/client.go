// Package completion turns calculator expressions into completion prompts and
// reduces every provider outcome to display text.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"llm-calculator/internal/config"
	"llm-calculator/internal/llm"
	"llm-calculator/internal/metrics"
	"llm-calculator/internal/types"
)

// Mode selects the prompt template.
type Mode int

const (
	// Evaluate asks for the bare result.
	Evaluate Mode = iota
	// Explain asks for a step-by-step explanation.
	Explain
)

func (m Mode) String() string {
	switch m {
	case Evaluate:
		return "evaluate"
	case Explain:
		return "explain"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Prompt renders the user message for expression.
func (m Mode) Prompt(expression string) string {
	if m == Explain {
		return fmt.Sprintf(config.ExplainPromptFormat, expression)
	}
	return fmt.Sprintf(config.EvaluatePromptFormat, expression)
}

// Client is the calculator's only path to the completion provider.
type Client struct {
	llm llm.Client
}

// NewClient creates a Client over the given provider
func NewClient(l llm.Client) *Client {
	return &Client{llm: l}
}

// Query sends expression with the mode's template and returns the trimmed answer.
// Failures come back as "Error: <detail>" so callers only ever display text.
func (c *Client) Query(ctx context.Context, expression string, mode Mode) string {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.QueriesTotal.WithLabelValues(mode.String(), status).Inc()
		metrics.QueryDuration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())
	}()

	slog.Debug("query started", "mode", mode, "expression", expression, "llm", c.llm.Name())

	answer, err := c.llm.SimpleTextQuery(ctx, config.SystemPrompt, mode.Prompt(expression))
	if err != nil {
		attrs := []any{"mode", mode, "error", err}
		var provErr *types.ProviderError
		if errors.As(err, &provErr) {
			attrs = append(attrs, "provider", provErr.Provider, "status_code", provErr.StatusCode)
		}
		slog.Warn("query failed", attrs...)
		return config.PrefixError + err.Error()
	}

	status = "success"
	slog.Debug("query finished", "mode", mode, "duration", time.Since(start))
	return strings.TrimSpace(answer)
}
