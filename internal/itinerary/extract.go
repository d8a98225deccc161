package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/neexbeast/quicktrip/internal/trip"
)

const maxActivities = 5

var (
	// ErrNoJSON means the model response contained no JSON object.
	ErrNoJSON = errors.New("no JSON object in model response")
	// ErrInvalidTrip means the JSON did not describe a usable trip.
	ErrInvalidTrip = errors.New("invalid trip in model response")
)

// ExtractJSON returns the text from the first '{' to the last '}'. The model
// may wrap the object in prose or code fences.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

// ParseTrip decodes a trip object. Ratings are clamped to [0, 5] and only the
// first five activities are kept.
func ParseTrip(raw string) (trip.Trip, error) {
	var t trip.Trip
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return trip.Trip{}, fmt.Errorf("%w: %v", ErrInvalidTrip, err)
	}

	t.Destination = strings.TrimSpace(t.Destination)
	if t.Destination == "" {
		return trip.Trip{}, fmt.Errorf("%w: missing destination", ErrInvalidTrip)
	}
	if len(t.Activities) == 0 {
		return trip.Trip{}, fmt.Errorf("%w: no activities", ErrInvalidTrip)
	}

	if len(t.Activities) > maxActivities {
		t.Activities = t.Activities[:maxActivities]
	}
	t.Rating = clampRating(t.Rating)
	for i := range t.Activities {
		t.Activities[i].Rating = clampRating(t.Activities[i].Rating)
	}

	// Enrichment owns these.
	t.TravelOptions = nil
	t.Accommodation = nil
	t.MapsURL = ""

	return t, nil
}

func clampRating(r float64) float64 {
	return min(max(r, 0), 5)
}
