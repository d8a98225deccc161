package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ---- Unsplash ----

const unsplashDefaultURL = "https://api.unsplash.com"

// PhotoClient searches photos on Unsplash.
type PhotoClient struct {
	accessKey string
	baseURL   string
	client    *http.Client
}

// NewPhotoClient constructs a PhotoClient with the given access key.
func NewPhotoClient(accessKey string) *PhotoClient {
	return &PhotoClient{accessKey: accessKey, baseURL: unsplashDefaultURL, client: newHTTPClient()}
}

// NewPhotoClientWithURL constructs a PhotoClient pointing at a custom base URL (for tests).
func NewPhotoClientWithURL(baseURL, accessKey string) *PhotoClient {
	return &PhotoClient{accessKey: accessKey, baseURL: strings.TrimRight(baseURL, "/"), client: newHTTPClient()}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Search returns the regular-size URL of up to perPage photos matching query.
func (c *PhotoClient) Search(ctx context.Context, query string, perPage int) ([]string, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("unsplash: no access key: %w", ErrUnavailable)
	}

	endpoint := c.baseURL + "/search/photos?query=" + url.QueryEscape(query) + "&per_page=" + strconv.Itoa(perPage)
	header := http.Header{}
	header.Set("Authorization", "Client-ID "+c.accessKey)

	var raw unsplashSearchResponse
	if err := doGet(ctx, c.client, "unsplash", endpoint, header, &raw); err != nil {
		return nil, fmt.Errorf("unsplash search for %q: %w", query, err)
	}

	urls := make([]string, 0, len(raw.Results))
	for _, r := range raw.Results {
		if r.URLs.Regular == "" {
			continue
		}
		urls = append(urls, r.URLs.Regular)
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("unsplash search for %q: no results: %w", query, ErrUnavailable)
	}

	return urls, nil
}
