package provider

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/neexbeast/quicktrip/internal/trip"
)

// ---- Google Directions ----

// Mode is a directions travel mode.
type Mode string

const (
	ModeDriving   Mode = "driving"
	ModeTransit   Mode = "transit"
	ModeBicycling Mode = "bicycling"
	ModeWalking   Mode = "walking"
)

var mapsModes = map[Mode]maps.Mode{
	ModeDriving:   maps.TravelModeDriving,
	ModeTransit:   maps.TravelModeTransit,
	ModeBicycling: maps.TravelModeBicycling,
	ModeWalking:   maps.TravelModeWalking,
}

// Route is the first leg of the first route between two places. The SDK
// keeps only the numeric duration, so DurationText is rebuilt from it.
type Route struct {
	Duration       time.Duration
	DurationText   string
	DistanceText   string
	DistanceMeters int
}

// DirectionsClient looks up travel times through the Google Directions API.
type DirectionsClient struct {
	client *maps.Client
}

// NewDirectionsClient constructs a DirectionsClient. An empty key yields a
// client that always reports ErrUnavailable.
func NewDirectionsClient(apiKey string) (*DirectionsClient, error) {
	if apiKey == "" {
		return &DirectionsClient{}, nil
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithHTTPClient(newHTTPClient()))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &DirectionsClient{client: c}, nil
}

// NewDirectionsClientWithURL constructs a DirectionsClient pointing at a custom base URL (for tests).
func NewDirectionsClientWithURL(baseURL, apiKey string) (*DirectionsClient, error) {
	c, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithBaseURL(baseURL),
		maps.WithHTTPClient(newHTTPClient()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &DirectionsClient{client: c}, nil
}

// Route returns travel details between origin and destination. Any non-OK
// status or an empty route list is reported as ErrUnavailable.
func (c *DirectionsClient) Route(ctx context.Context, origin, destination string, mode Mode) (*Route, error) {
	if c.client == nil {
		return nil, fmt.Errorf("directions: no api key: %w", ErrUnavailable)
	}

	mm, ok := mapsModes[mode]
	if !ok {
		return nil, fmt.Errorf("directions: unknown mode %q", mode)
	}

	routes, _, err := c.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mm,
	})
	if err != nil {
		return nil, fmt.Errorf("directions %s to %s: %v: %w", origin, destination, err, ErrUnavailable)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("directions %s to %s: no routes: %w", origin, destination, ErrUnavailable)
	}

	leg := routes[0].Legs[0]
	return &Route{
		Duration:       leg.Duration,
		DurationText:   trip.FormatMinutes(int(leg.Duration.Round(time.Minute) / time.Minute)),
		DistanceText:   leg.Distance.HumanReadable,
		DistanceMeters: leg.Distance.Meters,
	}, nil
}
