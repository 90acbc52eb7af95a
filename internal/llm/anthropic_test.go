package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicClientComplete(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "Unexpected"},
			},
		})
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", Endpoint: server.URL})
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), CompletionRequest{
		System:    "classify",
		Prompt:    "transaction",
		MaxTokens: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Unexpected", content)

	assert.Equal(t, "claude-3-5-haiku-latest", captured["model"])
	assert.Equal(t, "classify", captured["system"])
	assert.Equal(t, float64(0), captured["temperature"])
}

func TestAnthropicClientCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type": "error"}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAnthropicClientCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content": []}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content in response")
}

func TestNewAnthropicClientRequiresKey(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	require.Error(t, err)
}
