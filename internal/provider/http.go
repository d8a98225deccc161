// Package provider holds the adapters for the external services a trip is
// built from: the generative-text model, directions, lodging and photos.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

// ErrUnavailable signals that a provider has nothing to offer for this call:
// no credential configured, a non-success status sentinel, or an empty result.
// Callers treat it as a cue to fall back, not as a failure.
var ErrUnavailable = errors.New("provider unavailable")

// ProviderError is a non-success HTTP response from a provider.
type ProviderError struct {
	Provider string
	Status   int
	Detail   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Detail)
}

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGet performs a GET request with the given headers and decodes the JSON
// response into dst.
func doGet(ctx context.Context, client *http.Client, provider, rawURL string, header http.Header, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", provider, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(provider, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", provider, err)
	}

	return nil
}

// statusError builds a ProviderError from a non-success response. The detail
// is the raw body text, trimmed and capped.
func statusError(provider string, resp *http.Response) *ProviderError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	return &ProviderError{Provider: provider, Status: resp.StatusCode, Detail: detail}
}
