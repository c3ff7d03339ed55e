package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ExtraBodyRoundTripper wraps http.RoundTripper to merge configured JSON fields
// into every outgoing JSON request body. Keys are sjson paths, so "reasoning.effort"
// sets a nested field. Existing fields with the same path are overwritten.
type ExtraBodyRoundTripper struct {
	Base  http.RoundTripper
	Extra string // JSON object
}

// RoundTrip implements http.RoundTripper
func (t *ExtraBodyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Extra == "" || req.Body == nil || !strings.HasPrefix(req.Header.Get("Content-Type"), "application/json") {
		return base.RoundTrip(req)
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	patched, err := mergeExtraBody(body, t.Extra)
	if err != nil {
		return nil, err
	}

	// RoundTrippers must not modify the caller's request.
	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(patched))
	out.ContentLength = int64(len(patched))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(patched)), nil
	}
	return base.RoundTrip(out)
}

// mergeExtraBody sets every top-level key of extra onto body.
func mergeExtraBody(body []byte, extra string) ([]byte, error) {
	var err error
	gjson.Parse(extra).ForEach(func(key, value gjson.Result) bool {
		body, err = sjson.SetRawBytes(body, key.String(), []byte(value.Raw))
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("merge extra body: %w", err)
	}
	return body, nil
}

// ValidateExtraBody reports whether extra is empty or a JSON object.
func ValidateExtraBody(extra string) error {
	if extra == "" {
		return nil
	}
	if !gjson.Valid(extra) || !gjson.Parse(extra).IsObject() {
		return fmt.Errorf("extra_body must be a JSON object: %s", extra)
	}
	return nil
}

// newHTTPClient returns an http.Client that applies extra to request bodies,
// or nil when there is nothing to apply.
func newHTTPClient(extra string) *http.Client {
	if extra == "" {
		return nil
	}
	return &http.Client{
		Transport: &ExtraBodyRoundTripper{
			Base:  http.DefaultTransport,
			Extra: extra,
		},
	}
}

// probeMessage returns the first non-empty string found at any of paths in a
// provider error body.
func probeMessage(raw string, paths []string) string {
	if raw == "" || !gjson.Valid(raw) {
		return ""
	}
	for _, path := range paths {
		res := gjson.Get(raw, path)
		if res.Exists() && res.Type == gjson.String && res.String() != "" {
			return res.String()
		}
	}
	return ""
}
