package itinerary

import (
	"strings"

	"github.com/neexbeast/quicktrip/internal/trip"
)

// defaultOrigin is the origin that gets the coastal mock instead of Bath.
const defaultOrigin = "london"

// MockTrip returns a canned itinerary. It depends only on origin: travellers
// from London get Brighton, everyone else gets Bath.
func MockTrip(origin string) trip.Trip {
	if strings.EqualFold(strings.TrimSpace(origin), defaultOrigin) {
		return brightonTrip()
	}
	return bathTrip()
}

func bathTrip() trip.Trip {
	return trip.Trip{
		Destination: "Bath, UK",
		Subtitle:    "Riverside Escape",
		Duration:    "6h duration",
		CostRange:   "£18 - £40 pp",
		Rating:      4.7,
		Activities: []trip.Activity{
			{
				Name:        "Roman Baths",
				Category:    "Historic & Cultural",
				Description: "UNESCO World Heritage site with intact Roman architecture",
				Duration:    "1h 30m",
				Cost:        "£12",
				Rating:      4.8,
				MustDo:      true,
				StartTime:   "10:00",
			},
			{
				Name:        "Riverside Walk",
				Category:    "Scenic & Relaxing",
				Description: "Scenic route along the River Avon",
				Duration:    "45m",
				Cost:        "Free",
				Rating:      4.5,
				StartTime:   "11:45",
			},
			{
				Name:        "Sally Lunn's Cafe",
				Category:    "Local Food",
				Description: "Popular cafe with local cuisine",
				Duration:    "1h",
				Cost:        "£15",
				Rating:      4.6,
				MustDo:      true,
				StartTime:   "13:00",
			},
		},
		TripTips: []string{
			"Book online, arrive early",
			"Wear comfy shoes",
			"Try the local Bath bun",
		},
	}
}

func brightonTrip() trip.Trip {
	return trip.Trip{
		Destination: "Brighton, UK",
		Subtitle:    "Seaside Day Out",
		Duration:    "7h duration",
		CostRange:   "£15 - £45 pp",
		Rating:      4.6,
		Activities: []trip.Activity{
			{
				Name:        "Brighton Palace Pier",
				Category:    "Seaside & Fun",
				Description: "Victorian pier with arcades, rides and sea views",
				Duration:    "1h 30m",
				Cost:        "Free",
				Rating:      4.5,
				MustDo:      true,
				StartTime:   "10:30",
			},
			{
				Name:        "Royal Pavilion",
				Category:    "Historic & Cultural",
				Description: "Regency palace with Indian-inspired domes and lavish interiors",
				Duration:    "1h 30m",
				Cost:        "£18",
				Rating:      4.7,
				MustDo:      true,
				StartTime:   "12:15",
			},
			{
				Name:        "The Lanes",
				Category:    "Shopping & Food",
				Description: "Narrow lanes of independent shops, cafes and fish and chips",
				Duration:    "2h",
				Cost:        "£12",
				Rating:      4.6,
				StartTime:   "14:00",
			},
		},
		TripTips: []string{
			"Trains from London Victoria take about an hour",
			"Bring layers, the seafront gets windy",
			"Grab chips on the beach at sunset",
		},
	}
}
