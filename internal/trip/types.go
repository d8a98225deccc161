package trip

import "time"

// BudgetTier is the spending style a traveller picks alongside their budget.
type BudgetTier string

const (
	TierBudget  BudgetTier = "budget"
	TierComfort BudgetTier = "comfort"
	TierTreat   BudgetTier = "treat"
)

// GroupSize is the party size class.
type GroupSize string

const (
	GroupSolo   GroupSize = "solo"
	GroupCouple GroupSize = "couple"
	GroupGroup  GroupSize = "group"
)

// TravelMode is the way of getting to the destination.
type TravelMode string

const (
	ModeTrain TravelMode = "train"
	ModeCar   TravelMode = "car"
	ModeBus   TravelMode = "bus"
)

// Status marks a saved trip as already visited or still on the wish list.
type Status string

const (
	StatusExplored Status = "explored"
	StatusBucket   Status = "bucket"
)

// Preferences are the inputs a traveller gives before generating a trip.
type Preferences struct {
	Location        string     `json:"location"`
	MaxTravelTime   int        `json:"maxTravelTime"` // hours
	BudgetPerPerson float64    `json:"budgetPerPerson"`
	BudgetTier      BudgetTier `json:"budgetCategory"`
	GroupSize       GroupSize  `json:"groupSize"`
	Interests       []string   `json:"interests"`
}

// Activity is a single thing to do at the destination.
type Activity struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Duration        string  `json:"duration"` // e.g. "2h"
	Cost            string  `json:"cost"`     // e.g. "£15" or "Free"
	Rating          float64 `json:"rating"`
	MustDo          bool    `json:"mustDo"`
	BookingURL      string  `json:"bookingUrl,omitempty"`
	BookingPlatform string  `json:"bookingPlatform,omitempty"`
	StartTime       string  `json:"startTime,omitempty"`
}

// TravelOption describes one way of reaching the destination.
type TravelOption struct {
	Mode          TravelMode `json:"type"`
	Duration      string     `json:"duration"`
	Cost          string     `json:"cost"`
	FromLocation  string     `json:"fromLocation"`
	Tags          []string   `json:"tags"`
	DirectionsURL string     `json:"directionsUrl,omitempty"`
}

// Accommodation is a place to stay near the destination.
type Accommodation struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Rating     float64  `json:"rating"`
	Distance   string   `json:"distance"`
	PriceRange string   `json:"priceRange"`
	Amenities  []string `json:"amenities"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	BookingURL string   `json:"bookingUrl,omitempty"`
}

// Trip is a generated itinerary.
type Trip struct {
	Destination   string          `json:"destination"`
	Subtitle      string          `json:"subtitle"`
	Duration      string          `json:"duration"`
	CostRange     string          `json:"costRange"`
	Rating        float64         `json:"rating"`
	Activities    []Activity      `json:"activities"`
	TripTips      []string        `json:"tripTips"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	TravelOptions []TravelOption  `json:"travelOptions,omitempty"`
	Accommodation []Accommodation `json:"accommodation,omitempty"`
	MapsURL       string          `json:"mapsUrl,omitempty"`
	Interests     []string        `json:"interests,omitempty"`
}

// SavedTrip is a Trip the traveller kept, along with the preferences that
// produced it.
type SavedTrip struct {
	Trip
	ID          string       `json:"id"`
	SavedDate   time.Time    `json:"savedDate"`
	Status      Status       `json:"status"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
