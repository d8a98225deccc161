package enrich

import (
	"net/url"
	"strings"
)

// CategoryKind is the booking class an activity category falls into.
type CategoryKind string

const (
	KindDining  CategoryKind = "dining"
	KindTour    CategoryKind = "tour"
	KindGeneral CategoryKind = "general"
)

// categoryRules is evaluated top to bottom; the first rule with a keyword
// contained in the category wins. Anything unmatched is KindGeneral.
var categoryRules = []struct {
	kind     CategoryKind
	keywords []string
}{
	{KindDining, []string{"food", "restaurant", "cafe"}},
	{KindTour, []string{"tour", "experience"}},
}

// Platform is a booking site and how to search it.
type Platform struct {
	Name      string
	SearchURL string // query is appended, escaped
}

// Platforms maps every CategoryKind to the site activities of that kind are
// booked on.
var Platforms = map[CategoryKind]Platform{
	KindDining:  {Name: "Resy", SearchURL: "https://resy.com/search?query="},
	KindTour:    {Name: "GetYourGuide", SearchURL: "https://www.getyourguide.com/s/?q="},
	KindGeneral: {Name: "TripAdvisor", SearchURL: "https://www.tripadvisor.com/Search?q="},
}

// ClassifyCategory maps a free-text activity category to a CategoryKind.
// Matching is a case-insensitive substring check.
func ClassifyCategory(category string) CategoryKind {
	c := strings.ToLower(category)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(c, kw) {
				return rule.kind
			}
		}
	}
	return KindGeneral
}

// BookingLink returns a search URL for the activity on the platform its
// category maps to, and that platform's name.
func BookingLink(name, destination, category string) (link, platform string) {
	p := Platforms[ClassifyCategory(category)]
	query := strings.TrimSpace(name + " " + destination)
	return p.SearchURL + url.QueryEscape(query), p.Name
}
