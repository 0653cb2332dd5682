package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yoga-front/internal/domain"
)

// Client is the shared HTTP client behind every resource gateway. One
// request per call, no retry, no caching; non-2xx responses surface as
// *domain.APIError with status and body preserved verbatim.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	tokens     domain.TokenSource
}

// NewClient creates a backend API client with tuned HTTP transport.
// tokens may be nil for a client that never authenticates.
func NewClient(baseURL string, timeout time.Duration, tokens domain.TokenSource) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		tokens: tokens,
	}
}

// do performs one round trip. body is JSON-encoded when non-nil; the
// response is decoded into out when out is non-nil and the call succeeds.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if auth, ok := c.tokens.AuthToken(); ok {
			req.Header.Set("Authorization", auth)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
