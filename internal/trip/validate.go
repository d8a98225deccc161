package trip

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPreferences is returned when Preferences cannot drive generation.
var ErrInvalidPreferences = errors.New("invalid preferences")

// MaxTravelHours is the longest one-way travel time a day trip may ask for.
const MaxTravelHours = 24

// Valid reports whether t is one of the known budget tiers.
func (t BudgetTier) Valid() bool {
	switch t {
	case TierBudget, TierComfort, TierTreat:
		return true
	}
	return false
}

// Valid reports whether g is one of the known group sizes.
func (g GroupSize) Valid() bool {
	switch g {
	case GroupSolo, GroupCouple, GroupGroup:
		return true
	}
	return false
}

// Valid reports whether s is one of the known saved-trip statuses.
func (s Status) Valid() bool {
	return s == StatusExplored || s == StatusBucket
}

// Validate checks that p has everything generation needs.
func (p Preferences) Validate() error {
	switch {
	case strings.TrimSpace(p.Location) == "":
		return fmt.Errorf("%w: location is required", ErrInvalidPreferences)
	case p.MaxTravelTime < 1:
		return fmt.Errorf("%w: max travel time must be at least 1 hour", ErrInvalidPreferences)
	case p.MaxTravelTime > MaxTravelHours:
		return fmt.Errorf("%w: max travel time cannot exceed %d hours", ErrInvalidPreferences, MaxTravelHours)
	case p.BudgetPerPerson < 0:
		return fmt.Errorf("%w: budget per person cannot be negative", ErrInvalidPreferences)
	case !p.BudgetTier.Valid():
		return fmt.Errorf("%w: unknown budget category %q", ErrInvalidPreferences, p.BudgetTier)
	case !p.GroupSize.Valid():
		return fmt.Errorf("%w: unknown group size %q", ErrInvalidPreferences, p.GroupSize)
	case len(p.Interests) == 0:
		return fmt.Errorf("%w: at least one interest is required", ErrInvalidPreferences)
	}
	return nil
}

// FormatMinutes renders a minute count the way durations appear on trip
// cards: "45m", "4h", "2h 24m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Normalize returns t with empty optional lists set to nil. JSON drops both
// the same way, so a normalized trip reads back exactly as it was written.
func (t Trip) Normalize() Trip {
	if len(t.TravelOptions) == 0 {
		t.TravelOptions = nil
	}
	if len(t.Accommodation) == 0 {
		t.Accommodation = nil
	}
	if len(t.Interests) == 0 {
		t.Interests = nil
	}
	return t
}
