package enrich

import (
	"net/url"

	"github.com/neexbeast/quicktrip/internal/trip"
)

const googleMapsURL = "https://www.google.com/maps"

// MapsSearchURL links to a Google Maps search for destination.
func MapsSearchURL(destination string) string {
	return googleMapsURL + "/search/?api=1&query=" + url.QueryEscape(destination)
}

// DirectionsURL links to Google Maps directions from origin to destination.
// Car uses driving directions; train and bus use transit.
func DirectionsURL(origin, destination string, mode trip.TravelMode) string {
	travelMode := "transit"
	if mode == trip.ModeCar {
		travelMode = "driving"
	}
	return googleMapsURL + "/dir/?api=1&origin=" + url.QueryEscape(origin) +
		"&destination=" + url.QueryEscape(destination) +
		"&travelmode=" + travelMode
}
