// Package tines is a thin client for the Tines REST API. Every operation
// builds a request from the caller's arguments, issues it with bearer-token
// auth, and returns the parsed JSON response unmodified. The remote service
// is the source of truth for validation; this layer only checks presence.
package tines

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client issues authenticated requests against a single Tines tenant.
// It is safe for concurrent use; it holds no mutable state.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the given tenant base URL (including the
// API version path, e.g. https://tenant.tines.com/api/v1) and API token.
func NewClient(baseURL, token string, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}, nil
}

// do performs one authenticated request. body is serialized as the JSON
// payload when non-nil; query is appended to the URL when non-empty.
// Success responses return the parsed JSON body, or an empty object for
// empty bodies (204 on deletes). Error statuses return an *APIError with
// the parsed-or-raw body; failures to obtain a response at all return a
// *TransportError.
func (c *Client) do(ctx context.Context, method, endpoint string, body map[string]any, query url.Values) (any, error) {
	target := strings.TrimSuffix(c.baseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("tines request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Any("body", body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tines request failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read response body", zap.String("url", target), zap.Error(err))
		return nil, &TransportError{Err: err}
	}

	c.logger.Info("tines response",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", raw))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			apiErr.Body = parsed
		} else {
			apiErr.Body = string(raw)
		}
		c.logger.Error("tines API error",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.Any("error_body", apiErr.Body))
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	return result, nil
}

// Debug probes an arbitrary endpoint and wraps the outcome in a
// success/error envelope instead of propagating the failure.
func (c *Client) Debug(ctx context.Context, method, endpoint string, body map[string]any) map[string]any {
	c.logger.Info("debug endpoint test", zap.String("method", method), zap.String("endpoint", endpoint))
	result, err := c.do(ctx, method, endpoint, body, nil)
	if err != nil {
		c.logger.Error("debug endpoint failed", zap.String("endpoint", endpoint), zap.Error(err))
		return map[string]any{"success": false, "error": err.Error()}
	}
	return map[string]any{"success": true, "data": result}
}
