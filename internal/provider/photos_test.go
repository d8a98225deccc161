package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/quicktrip/internal/provider"
)

func TestPhotoSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Bath travel landmark", r.URL.Query().Get("query"))
		assert.Equal(t, "3", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"urls": map[string]string{"regular": "https://img/1"}},
				{"urls": map[string]string{"regular": ""}},
				{"urls": map[string]string{"regular": "https://img/2"}},
			},
		})
	}))
	defer srv.Close()

	c := provider.NewPhotoClientWithURL(srv.URL, "test-key")
	urls, err := c.Search(context.Background(), "Bath travel landmark", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1", "https://img/2"}, urls)
}

func TestPhotoSearch_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := provider.NewPhotoClientWithURL(srv.URL, "test-key")
	_, err := c.Search(context.Background(), "Nowhere travel landmark", 3)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestPhotoSearch_NoKey(t *testing.T) {
	_, err := provider.NewPhotoClient("").Search(context.Background(), "Bath", 3)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}
