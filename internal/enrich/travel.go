package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/neexbeast/quicktrip/internal/provider"
	"github.com/neexbeast/quicktrip/internal/trip"
)

const (
	fuelCostPerKm = 0.15
	kmPerMile     = 1.60934

	trainFraction   = 0.6
	carFraction     = 0.8
	minTrainMinutes = 30
)

// Router looks up a route between two places.
type Router interface {
	Route(ctx context.Context, origin, destination string, mode provider.Mode) (*provider.Route, error)
}

// TravelOptions returns one train, one car and one bus option, in that
// order. Train and car use live directions when available and fall back to
// estimates derived from prefs.MaxTravelTime. Bus is always estimated.
// Live durations use the route's DurationText, which is in FormatMinutes
// form ("2h 24m") rather than Google's own wording.
func TravelOptions(ctx context.Context, router Router, prefs trip.Preferences, destination string) []trip.TravelOption {
	origin := prefs.Location
	budgetMinutes := prefs.MaxTravelTime * 60

	train := trip.TravelOption{
		Mode:         trip.ModeTrain,
		Duration:     trip.FormatMinutes(max(minTrainMinutes, int(math.Floor(float64(budgetMinutes)*trainFraction)))),
		Cost:         "£20 - £45",
		FromLocation: origin,
		Tags:         []string{"Fast", "Eco-friendly"},
	}
	if r := lookupRoute(ctx, router, origin, destination, provider.ModeTransit); r != nil {
		train.Duration = r.DurationText
		train.Cost = "£25 - £60"
		train.Tags = []string{"Fast", "Scenic"}
	}

	car := trip.TravelOption{
		Mode:         trip.ModeCar,
		Duration:     trip.FormatMinutes(int(math.Floor(float64(budgetMinutes) * carFraction))),
		Cost:         "£15 - £30 (fuel)",
		FromLocation: origin,
		Tags:         []string{"Flexible", "Stop anywhere"},
	}
	if r := lookupRoute(ctx, router, origin, destination, provider.ModeDriving); r != nil {
		car.Duration = r.DurationText
		car.Cost = fmt.Sprintf("£%d (fuel)", FuelCost(r.DistanceText, r.DistanceMeters))
	}

	bus := trip.TravelOption{
		Mode:         trip.ModeBus,
		Duration:     trip.FormatMinutes(budgetMinutes),
		Cost:         "£8 - £20",
		FromLocation: origin,
		Tags:         []string{"Cheapest", "Direct"},
	}

	options := []trip.TravelOption{train, car, bus}
	for i := range options {
		options[i].DirectionsURL = DirectionsURL(origin, destination, options[i].Mode)
	}
	return options
}

func lookupRoute(ctx context.Context, router Router, origin, destination string, mode provider.Mode) *provider.Route {
	if router == nil {
		return nil
	}
	r, err := router.Route(ctx, origin, destination, mode)
	if err != nil {
		slog.Warn("directions lookup failed, using estimate", "mode", mode, "destination", destination, "err", err)
		return nil
	}
	return r
}

// FuelCost estimates a one-way fuel cost in whole pounds. The distance label
// ("118 mi", "190 km") is preferred; meters are used when it cannot be read.
func FuelCost(distanceText string, meters int) int {
	km, ok := parseKm(distanceText)
	if !ok {
		km = float64(meters) / 1000
	}
	return int(math.Round(km * fuelCostPerKm))
}

func parseKm(label string) (float64, bool) {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(label), ",", ""))
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	switch fields[1] {
	case "mi", "mile", "miles":
		return n * kmPerMile, true
	case "km", "kms":
		return n, true
	case "m":
		return n / 1000, true
	}
	return 0, false
}
