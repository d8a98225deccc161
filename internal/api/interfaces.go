package api

import (
	"context"

	"github.com/neexbeast/quicktrip/internal/itinerary"
	"github.com/neexbeast/quicktrip/internal/storage"
	"github.com/neexbeast/quicktrip/internal/trip"
)

// TripGenerator produces an itinerary from preferences.
type TripGenerator interface {
	Generate(ctx context.Context, prefs trip.Preferences) (itinerary.Result, error)
}

// SavedTripRepo defines the storage operations needed by handlers.
type SavedTripRepo interface {
	SaveTrip(ctx context.Context, t trip.Trip, prefs *trip.Preferences) (*trip.SavedTrip, error)
	GetSavedTrip(ctx context.Context, id string) (*trip.SavedTrip, error)
	ListSavedTrips(ctx context.Context, f storage.Filter) ([]*trip.SavedTrip, error)
	UpdateStatus(ctx context.Context, id string, status trip.Status) error
	DeleteSavedTrip(ctx context.Context, id string) error
}

// SavedTripCache defines the cache operations needed by handlers.
type SavedTripCache interface {
	Get(ctx context.Context, id string) (*trip.SavedTrip, error)
	Set(ctx context.Context, st *trip.SavedTrip) error
	Delete(ctx context.Context, id string) error
}
