// Package calculator holds the calculator's entry buffer, display text and
// explain gate, independent of any UI toolkit.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"llm-calculator/internal/completion"
	"llm-calculator/internal/config"
	"llm-calculator/internal/metrics"

	"golang.org/x/sync/semaphore"
)

var (
	// ErrBusy is returned by every mutating operation while a request is in flight.
	ErrBusy = errors.New("calculator: request in flight")
	// ErrExplainUnavailable is returned by Explain before any result exists.
	ErrExplainUnavailable = errors.New("calculator: no result to explain")
)

// Querier is the completion client as seen by the calculator.
type Querier interface {
	Query(ctx context.Context, expression string, mode completion.Mode) string
}

// State is a consistent snapshot of the calculator.
type State struct {
	Entry          string
	Display        string
	ExplainEnabled bool
	Busy           bool
}

// IntegralRequest is the triple collected by the integral dialog. Fields are free text.
type IntegralRequest struct {
	Function string
	Lower    string
	Upper    string
}

// Expression formats the request as the text sent for evaluation.
func (r IntegralRequest) Expression() string {
	return fmt.Sprintf(config.IntegralFormat, r.Function, r.Lower, r.Upper)
}

// Calculator owns the calculator state. At most one request is in flight at a time;
// all methods are safe for concurrent use.
type Calculator struct {
	querier  Querier
	inflight *semaphore.Weighted

	mu       sync.Mutex
	state    State
	listener func(State)
}

// New creates a Calculator in its cleared state.
func New(q Querier) *Calculator {
	return &Calculator{
		querier:  q,
		inflight: semaphore.NewWeighted(1),
		state:    State{Display: config.LabelPlaceholder},
	}
}

// OnChange registers fn to receive a snapshot after every state transition.
// fn is called without internal locks held, possibly from a request goroutine.
func (c *Calculator) OnChange(fn func(State)) {
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
}

// Snapshot returns the current state.
func (c *Calculator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Press appends a button token to the entry buffer.
func (c *Calculator) Press(token string) error {
	return c.mutate("press", func(s *State) {
		s.Entry += token
	})
}

// SetEntry replaces the entry buffer with keyboard-edited text.
func (c *Calculator) SetEntry(text string) error {
	return c.mutate("edit", func(s *State) {
		s.Entry = text
	})
}

// Clear empties the entry, resets the display and disables explain.
func (c *Calculator) Clear() error {
	return c.mutate("clear", func(s *State) {
		s.Entry = ""
		s.Display = config.LabelPlaceholder
		s.ExplainEnabled = false
	})
}

// Evaluate sends the entry buffer for calculation. An empty entry shows the
// prompt-for-input message and leaves the explain gate alone.
func (c *Calculator) Evaluate(ctx context.Context) error {
	return c.dispatch(ctx, "evaluate", completion.Evaluate, config.PrefixResult, true, func(s State) (string, error) {
		return s.Entry, nil
	})
}

// Explain sends the current entry buffer for a step-by-step explanation.
// It explains whatever the entry holds now, which may differ from the text
// that produced the displayed result.
func (c *Calculator) Explain(ctx context.Context) error {
	return c.dispatch(ctx, "explain", completion.Explain, config.PrefixExplanation, false, func(s State) (string, error) {
		if !s.ExplainEnabled {
			return "", ErrExplainUnavailable
		}
		return s.Entry, nil
	})
}

// Integral evaluates a confirmed integral request. The entry buffer is not touched.
func (c *Calculator) Integral(ctx context.Context, req IntegralRequest) error {
	return c.dispatch(ctx, "integral", completion.Evaluate, config.PrefixIntegral, true, func(State) (string, error) {
		return req.Expression(), nil
	})
}

func (c *Calculator) mutate(action string, fn func(*State)) error {
	if !c.inflight.TryAcquire(1) {
		metrics.ActionsTotal.WithLabelValues(action, "busy").Inc()
		return ErrBusy
	}

	c.mu.Lock()
	fn(&c.state)
	snap, listener := c.state, c.listener
	c.mu.Unlock()
	c.inflight.Release(1)

	metrics.ActionsTotal.WithLabelValues(action, "applied").Inc()
	notify(listener, snap)
	return nil
}

// dispatch runs one request: Idle -> AwaitingResponse -> Idle. expression picks
// the text to send from the state at dispatch time; an empty result means
// there is nothing to send.
func (c *Calculator) dispatch(ctx context.Context, action string, mode completion.Mode, prefix string,
	enableExplain bool, expression func(State) (string, error)) error {

	if !c.inflight.TryAcquire(1) {
		metrics.ActionsTotal.WithLabelValues(action, "busy").Inc()
		return ErrBusy
	}

	c.mu.Lock()
	expr, err := expression(c.state)
	if err != nil {
		c.mu.Unlock()
		c.inflight.Release(1)
		metrics.ActionsTotal.WithLabelValues(action, "rejected").Inc()
		return err
	}
	if expr == "" {
		c.state.Display = config.LabelPromptForInput
		snap, listener := c.state, c.listener
		c.mu.Unlock()
		c.inflight.Release(1)
		metrics.ActionsTotal.WithLabelValues(action, "empty").Inc()
		notify(listener, snap)
		return nil
	}
	c.state.Busy = true
	snap, listener := c.state, c.listener
	c.mu.Unlock()
	notify(listener, snap)

	slog.Debug("request dispatched", "action", action, "expression", expr)
	answer := c.querier.Query(ctx, expr, mode)

	c.mu.Lock()
	c.state.Busy = false
	c.state.Display = prefix + answer
	if enableExplain {
		c.state.ExplainEnabled = true
	}
	snap, listener = c.state, c.listener
	c.mu.Unlock()
	c.inflight.Release(1)

	metrics.ActionsTotal.WithLabelValues(action, "applied").Inc()
	notify(listener, snap)
	return nil
}

func notify(listener func(State), s State) {
	if listener != nil {
		listener(s)
	}
}
