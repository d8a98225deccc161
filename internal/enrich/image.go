package enrich

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// DefaultImageURL is used when nothing better is known for a location.
	DefaultImageURL = "https://images.unsplash.com/photo-1516483638261-f4dbaf036963"

	imagesPerSearch = 3
)

// knownImages is checked in order against the lowercased location.
var knownImages = []struct {
	match string
	url   string
}{
	{"bath", "https://images.unsplash.com/photo-1580837119756-563d608dd119"},
	{"brighton", "https://images.unsplash.com/photo-1567604130959-7ea7ab2a7807"},
	{"london", "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad"},
	{"edinburgh", "https://images.unsplash.com/photo-1506377585622-bedcbb027afc"},
	{"oxford", "https://images.unsplash.com/photo-1580492516014-4a28466d55df"},
	{"cambridge", "https://images.unsplash.com/photo-1591634616938-1dfa7ee2e617"},
	{"york", "https://images.unsplash.com/photo-1563299796-17596ed6b017"},
	{"paris", "https://images.unsplash.com/photo-1502602898657-3e91760cbb34"},
}

// PhotoSearcher finds photo URLs for a query.
type PhotoSearcher interface {
	Search(ctx context.Context, query string, perPage int) ([]string, error)
}

// RandSource picks an index in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// ImageFinder picks a hero image for a destination.
type ImageFinder struct {
	photos PhotoSearcher
	rng    RandSource
}

// NewImageFinder constructs an ImageFinder. photos may be nil; rng is shared
// across requests.
func NewImageFinder(photos PhotoSearcher, rng RandSource) *ImageFinder {
	return &ImageFinder{photos: photos, rng: rng}
}

// Find returns a photo of location, chosen at random among the top three
// search results, or DefaultImage when the search has nothing.
func (f *ImageFinder) Find(ctx context.Context, location string) string {
	if f.photos == nil {
		return DefaultImage(location)
	}

	urls, err := f.photos.Search(ctx, location+" travel landmark", imagesPerSearch)
	if err != nil || len(urls) == 0 {
		slog.Warn("photo search returned nothing, using default", "location", location, "err", err)
		return DefaultImage(location)
	}

	n := min(len(urls), imagesPerSearch)
	return urls[f.rng.IntN(n)]
}

// DefaultImage returns the stock image for a known destination, or
// DefaultImageURL.
func DefaultImage(location string) string {
	l := strings.ToLower(location)
	for _, k := range knownImages {
		if strings.Contains(l, k.match) {
			return k.url
		}
	}
	return DefaultImageURL
}
