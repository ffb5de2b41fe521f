package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-generator/internal/domain"
)

var testSampling = domain.SamplingConfig{Temperature: 0.8, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024}

func newTestServer(t *testing.T, status int, body string, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		if captured != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, captured)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	require.Error(t, err)
}

func TestClient_GenerateText(t *testing.T) {
	var captured map[string]interface{}
	srv := newTestServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "{\"headline\":\"h\"}"}]},
			"finishReason": "STOP"
		}]
	}`, &captured)

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := client.GenerateText(context.Background(), "write something", testSampling)
	require.NoError(t, err)
	assert.Equal(t, `{"headline":"h"}`, text)

	require.NotNil(t, captured)
	cfg, ok := captured["generationConfig"].(map[string]interface{})
	require.True(t, ok, "generationConfig should be sent")
	assert.InDelta(t, 0.8, cfg["temperature"], 0.001)
	assert.InDelta(t, 40, cfg["topK"], 0.001)
	assert.InDelta(t, 0.95, cfg["topP"], 0.001)
	assert.InDelta(t, 1024, cfg["maxOutputTokens"], 0.001)
}

func TestClient_GenerateText_UpstreamError(t *testing.T) {
	srv := newTestServer(t, http.StatusServiceUnavailable, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`, nil)

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt", testSampling)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API")
}

func TestClient_GenerateText_NoCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"candidates": []}`, nil)

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt", testSampling)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidate text")
}
