package provider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/quicktrip/internal/provider"
)

func TestAnthropicGenerate_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"type": "text", "text": `Here you go: {"destination":"Bath, UK"}`}},
		})
	}))
	defer srv.Close()

	c := provider.NewAnthropicClientWithURL(srv.URL, "test-key", "", 2000)
	text, err := c.Generate(context.Background(), "plan a trip")
	require.NoError(t, err)
	assert.Equal(t, `Here you go: {"destination":"Bath, UK"}`, text)

	assert.Equal(t, provider.DefaultAnthropicModel, got["model"])
	assert.EqualValues(t, 2000, got["max_tokens"])
	msgs, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "plan a trip", msgs[0].(map[string]any)["content"])
}

func TestAnthropicGenerate_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	c := provider.NewAnthropicClientWithURL(srv.URL, "bad-key", "", 2000)
	_, err := c.Generate(context.Background(), "plan a trip")
	require.Error(t, err)

	var perr *provider.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusUnauthorized, perr.Status)
	assert.Equal(t, "invalid x-api-key", perr.Detail)
}

func TestAnthropicGenerate_RawErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := provider.NewAnthropicClientWithURL(srv.URL, "test-key", "", 2000)
	_, err := c.Generate(context.Background(), "plan a trip")

	var perr *provider.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "upstream exploded", perr.Detail)
}

func TestAnthropicGenerate_NoKey(t *testing.T) {
	c := provider.NewAnthropicClient("", "", 2000)
	_, err := c.Generate(context.Background(), "plan a trip")
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}
