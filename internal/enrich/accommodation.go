package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"time"

	"github.com/neexbeast/quicktrip/internal/provider"
	"github.com/neexbeast/quicktrip/internal/trip"
)

const (
	bookingSearchURL = "https://www.booking.com/searchresults.html?ss="
	stayAdults       = 2
)

// tierCeilings are nightly price ceilings in GBP. Treat has none.
var tierCeilings = map[trip.BudgetTier]float64{
	trip.TierBudget:  80,
	trip.TierComfort: 200,
}

// LodgingSearcher finds properties for a stay.
type LodgingSearcher interface {
	Search(ctx context.Context, q provider.LodgingQuery) ([]provider.Property, error)
}

// Accommodation returns up to three places to stay at destination for a
// one-night stay starting on today's date. When the live search yields
// nothing, three archetypal entries named after destination are returned.
func Accommodation(ctx context.Context, lodging LodgingSearcher, now time.Time, destination string, tier trip.BudgetTier) []trip.Accommodation {
	if lodging == nil {
		return FallbackAccommodation(destination)
	}

	checkIn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	props, err := lodging.Search(ctx, provider.LodgingQuery{
		Location: destination,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 1),
		Adults:   stayAdults,
		MaxPrice: tierCeilings[tier],
	})
	if err != nil || len(props) == 0 {
		slog.Warn("lodging search returned nothing, using fallback", "destination", destination, "err", err)
		return FallbackAccommodation(destination)
	}

	link := bookingSearchURL + url.QueryEscape(provider.CleanLocation(destination))
	out := make([]trip.Accommodation, 0, 3)
	for _, p := range props {
		if len(out) == 3 {
			break
		}
		kind := p.Type
		if kind == "" {
			kind = "Hotel"
		}
		distance := "Near centre"
		if p.DistanceToCentre != "" {
			distance = p.DistanceToCentre + " km from centre"
		}
		out = append(out, trip.Accommodation{
			Name:       p.Name,
			Type:       kind,
			Rating:     p.ReviewScore,
			Distance:   distance,
			PriceRange: fmt.Sprintf("£%d per night", int(math.Round(p.MinTotalPrice))),
			Amenities:  []string{"WiFi", "Parking"},
			ImageURL:   p.PhotoURL,
			BookingURL: link,
		})
	}
	return out
}

// FallbackAccommodation returns the same three archetypes for every tier.
func FallbackAccommodation(destination string) []trip.Accommodation {
	link := bookingSearchURL + url.QueryEscape(provider.CleanLocation(destination))
	return []trip.Accommodation{
		{
			Name:       "The Grand Hotel, " + destination,
			Type:       "Luxury Hotel",
			Rating:     4.7,
			Distance:   "0.3 km from centre",
			PriceRange: "£180 - £320/night",
			Amenities:  []string{"Spa", "Restaurant", "Room service"},
			BookingURL: link,
		},
		{
			Name:       "Central Apartments, " + destination,
			Type:       "Apartment",
			Rating:     4.4,
			Distance:   "0.8 km from centre",
			PriceRange: "£90 - £150/night",
			Amenities:  []string{"Kitchen", "WiFi", "Washer"},
			BookingURL: link,
		},
		{
			Name:       "Backpackers Hostel, " + destination,
			Type:       "Budget Hostel",
			Rating:     4.1,
			Distance:   "1.2 km from centre",
			PriceRange: "£25 - £45/night",
			Amenities:  []string{"WiFi", "Shared kitchen", "Lockers"},
			BookingURL: link,
		},
	}
}
