package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ---- Booking.com (RapidAPI) ----

const (
	bookingHost       = "booking-com.p.rapidapi.com"
	bookingDefaultURL = "https://" + bookingHost

	// priceOrderCeiling is the nightly ceiling below which results are
	// ranked by price instead of popularity.
	priceOrderCeiling = 100
	maxProperties     = 3
)

// LodgingQuery describes a lodging search. MaxPrice of zero means no ceiling.
type LodgingQuery struct {
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	MaxPrice float64
}

// Property is a candidate place to stay.
type Property struct {
	Name             string
	Type             string
	ReviewScore      float64
	DistanceToCentre string
	MinTotalPrice    float64
	PhotoURL         string
}

// LodgingClient searches for hotels through the Booking.com RapidAPI.
type LodgingClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewLodgingClient constructs a LodgingClient with the given RapidAPI key.
func NewLodgingClient(apiKey string) *LodgingClient {
	return &LodgingClient{apiKey: apiKey, baseURL: bookingDefaultURL, client: newHTTPClient()}
}

// NewLodgingClientWithURL constructs a LodgingClient pointing at a custom base URL (for tests).
func NewLodgingClientWithURL(baseURL, apiKey string) *LodgingClient {
	return &LodgingClient{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/"), client: newHTTPClient()}
}

type bookingLocation struct {
	DestID   string `json:"dest_id"`
	DestType string `json:"dest_type"`
}

type bookingSearchResponse struct {
	Result []struct {
		HotelName             string   `json:"hotel_name"`
		AccommodationTypeName string   `json:"accommodation_type_name"`
		ReviewScore           *float64 `json:"review_score"`
		DistanceToCC          any      `json:"distance_to_cc"`
		MinTotalPrice         *float64 `json:"min_total_price"`
		MainPhotoURL          string   `json:"main_photo_url"`
	} `json:"result"`
}

// CleanLocation keeps the part of a "City, Country" label before the first
// comma, which matches provider location search better.
func CleanLocation(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}

func (c *LodgingClient) headers() http.Header {
	h := http.Header{}
	h.Set("x-rapidapi-key", c.apiKey)
	h.Set("x-rapidapi-host", bookingHost)
	return h
}

// Search resolves q.Location to a destination id (first match only), then
// searches properties there. Results above q.MaxPrice, or without a price
// when a ceiling is set, are dropped. At most three properties are returned.
func (c *LodgingClient) Search(ctx context.Context, q LodgingQuery) ([]Property, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("booking: no api key: %w", ErrUnavailable)
	}

	city := CleanLocation(q.Location)

	locURL := c.baseURL + "/v1/hotels/locations?name=" + url.QueryEscape(city) + "&locale=en-gb"
	var locs []bookingLocation
	if err := doGet(ctx, c.client, "booking locations", locURL, c.headers(), &locs); err != nil {
		return nil, fmt.Errorf("booking location search for %s: %w", city, err)
	}
	if len(locs) == 0 {
		return nil, fmt.Errorf("booking location search for %s: no match: %w", city, ErrUnavailable)
	}

	order := "popularity"
	if q.MaxPrice > 0 && q.MaxPrice < priceOrderCeiling {
		order = "price"
	}

	adults := q.Adults
	if adults < 1 {
		adults = 2
	}

	params := url.Values{}
	params.Set("dest_id", locs[0].DestID)
	params.Set("search_type", locs[0].DestType)
	params.Set("dest_type", locs[0].DestType)
	params.Set("checkin_date", q.CheckIn.Format(time.DateOnly))
	params.Set("checkout_date", q.CheckOut.Format(time.DateOnly))
	params.Set("adults_number", strconv.Itoa(adults))
	params.Set("room_number", "1")
	params.Set("order_by", order)
	params.Set("filter_by_currency", "GBP")
	params.Set("locale", "en-gb")
	params.Set("units", "metric")

	var raw bookingSearchResponse
	if err := doGet(ctx, c.client, "booking search", c.baseURL+"/v1/hotels/search?"+params.Encode(), c.headers(), &raw); err != nil {
		return nil, fmt.Errorf("booking hotel search for %s: %w", city, err)
	}

	props := make([]Property, 0, maxProperties)
	for _, h := range raw.Result {
		if q.MaxPrice > 0 && (h.MinTotalPrice == nil || *h.MinTotalPrice == 0 || *h.MinTotalPrice > q.MaxPrice) {
			continue
		}
		p := Property{
			Name:             h.HotelName,
			Type:             h.AccommodationTypeName,
			DistanceToCentre: distanceLabel(h.DistanceToCC),
			PhotoURL:         h.MainPhotoURL,
		}
		if h.ReviewScore != nil {
			p.ReviewScore = *h.ReviewScore
		}
		if h.MinTotalPrice != nil {
			p.MinTotalPrice = *h.MinTotalPrice
		}
		props = append(props, p)
		if len(props) == maxProperties {
			break
		}
	}

	slog.Debug("booking search", "city", city, "order", order, "raw", len(raw.Result), "kept", len(props))

	if len(props) == 0 {
		return nil, fmt.Errorf("booking hotel search for %s: no properties: %w", city, ErrUnavailable)
	}

	return props, nil
}

// distanceLabel renders distance_to_cc, which the API sends as either a
// number or a numeric string.
func distanceLabel(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
