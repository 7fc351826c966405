package tines

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// capturedRequest records one request received by a fake Tines backend.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
	Header http.Header
}

// captureServer runs a fake Tines backend that records every request and
// answers each with the given response body and status 200 (or the status
// paired with the response when it is a responseWithStatus).
type responseWithStatus struct {
	status int
	body   string
}

func captureServer(t *testing.T, responses ...any) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var calls []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured := capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			var body map[string]any
			if err := json.Unmarshal(raw, &body); err == nil {
				captured.Body = body
			}
		}
		calls = append(calls, captured)

		resp := any(`{}`)
		if len(responses) > 0 {
			i := len(calls) - 1
			if i >= len(responses) {
				i = len(responses) - 1
			}
			resp = responses[i]
		}

		w.Header().Set("Content-Type", "application/json")
		switch v := resp.(type) {
		case responseWithStatus:
			w.WriteHeader(v.status)
			io.WriteString(w, v.body)
		case string:
			io.WriteString(w, v)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(baseURL, "test-token", zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresConfiguration(t *testing.T) {
	logger := zap.NewNop()

	_, err := NewClient("", "token", logger)
	assert.Error(t, err)

	_, err = NewClient("https://tenant.tines.com/api/v1", "", logger)
	assert.Error(t, err)

	client, err := NewClient("https://tenant.tines.com/api/v1", "token", nil)
	require.NoError(t, err)
	assert.NotNil(t, client.logger)
}

func TestDoJoinsURLAndSetsHeaders(t *testing.T) {
	srv, calls := captureServer(t, `{"ok": true}`)

	// One trailing slash on the base and one leading slash on the
	// endpoint are stripped before joining.
	client := testClient(t, srv.URL+"/")
	result, err := client.do(context.Background(), http.MethodGet, "/stories", nil, nil)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/stories", call.Path)
	assert.Equal(t, "Bearer test-token", call.Header.Get("Authorization"))
	assert.Equal(t, "application/json", call.Header.Get("Content-Type"))
	assert.Equal(t, map[string]any{"ok": true}, result)
}

func TestDoReturnsResponseUnmodified(t *testing.T) {
	srv, _ := captureServer(t, `{"stories": [{"id": 1, "name": "a"}], "meta": {"pages": 3}}`)
	client := testClient(t, srv.URL)

	result, err := client.do(context.Background(), http.MethodGet, "stories", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"stories": []any{map[string]any{"id": float64(1), "name": "a"}},
		"meta":    map[string]any{"pages": float64(3)},
	}, result)
}

func TestDoNormalizesEmptyBody(t *testing.T) {
	srv, _ := captureServer(t, responseWithStatus{status: http.StatusNoContent, body: ""})
	client := testClient(t, srv.URL)

	result, err := client.do(context.Background(), http.MethodDelete, "notes/5", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, result)
}

func TestDoReturnsAPIErrorWithParsedBody(t *testing.T) {
	srv, _ := captureServer(t, responseWithStatus{status: http.StatusNotFound, body: `{"error": "story not found"}`})
	client := testClient(t, srv.URL)

	_, err := client.do(context.Background(), http.MethodGet, "stories/99", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, map[string]any{"error": "story not found"}, apiErr.Body)
}

func TestDoReturnsAPIErrorWithRawBody(t *testing.T) {
	srv, _ := captureServer(t, responseWithStatus{status: http.StatusInternalServerError, body: "<html>oops</html>"})
	client := testClient(t, srv.URL)

	_, err := client.do(context.Background(), http.MethodGet, "stories", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "<html>oops</html>", apiErr.Body)
}

func TestDoReturnsTransportErrorWhenUnreachable(t *testing.T) {
	srv, _ := captureServer(t)
	srv.Close()
	client := testClient(t, srv.URL)

	_, err := client.do(context.Background(), http.MethodGet, "stories", nil, nil)
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestDebugWrapsOutcome(t *testing.T) {
	srv, _ := captureServer(t, `{"id": 1}`)
	client := testClient(t, srv.URL)

	result := client.Debug(context.Background(), http.MethodGet, "stories/1", nil)
	assert.Equal(t, map[string]any{"success": true, "data": map[string]any{"id": float64(1)}}, result)

	srv.Close()
	result = client.Debug(context.Background(), http.MethodGet, "stories/1", nil)
	assert.Equal(t, false, result["success"])
	assert.NotEmpty(t, result["error"])
}
