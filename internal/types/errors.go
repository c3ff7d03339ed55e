package types

import "fmt"

// ProviderError represents a failure reported by a completion provider over HTTP.
// Detail carries the provider's own message when one could be extracted from the body.
type ProviderError struct {
	Provider   string
	StatusCode int
	Detail     string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps an existing error as a ProviderError.
func NewProviderError(provider string, statusCode int, detail string, err error) error {
	return &ProviderError{Provider: provider, StatusCode: statusCode, Detail: detail, Err: err}
}
