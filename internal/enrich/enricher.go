// Package enrich decorates a base trip with booking links, travel options,
// accommodation, a hero image and a maps link.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/quicktrip/internal/trip"
)

// Enricher runs the enrichment steps against the external adapters.
type Enricher struct {
	router  Router
	lodging LodgingSearcher
	images  *ImageFinder
	now     func() time.Time
	log     *slog.Logger
}

// NewEnricher constructs an Enricher. Any adapter may be nil, in which case
// its step goes straight to its fallback.
func NewEnricher(router Router, lodging LodgingSearcher, images *ImageFinder, log *slog.Logger) *Enricher {
	return NewEnricherWithClock(router, lodging, images, log, time.Now)
}

// NewEnricherWithClock constructs an Enricher with an injectable clock (used in tests).
func NewEnricherWithClock(router Router, lodging LodgingSearcher, images *ImageFinder, log *slog.Logger, now func() time.Time) *Enricher {
	if log == nil {
		log = slog.Default()
	}
	return &Enricher{router: router, lodging: lodging, images: images, now: now, log: log}
}

// Enrich returns a copy of t with every enrichment applied. Travel options,
// accommodation and the image are looked up in parallel; each falls back
// on its own and none can fail the others. A step that panics gets its
// fallback.
func (e *Enricher) Enrich(ctx context.Context, prefs trip.Preferences, t trip.Trip) trip.Trip {
	out := t
	out.Activities = make([]trip.Activity, len(t.Activities))
	for i, a := range t.Activities {
		if a.BookingURL == "" {
			a.BookingURL, a.BookingPlatform = BookingLink(a.Name, t.Destination, a.Category)
		}
		out.Activities[i] = a
	}

	if len(out.Interests) == 0 {
		out.Interests = append([]string(nil), prefs.Interests...)
	}
	out.MapsURL = MapsSearchURL(t.Destination)

	// A plain Group: a panicking step must not cancel the others' lookups.
	var g errgroup.Group

	var travel []trip.TravelOption
	var stays []trip.Accommodation
	var image string

	g.Go(func() (err error) {
		defer e.recoverStep("travel options", &err)
		travel = TravelOptions(ctx, e.router, prefs, t.Destination)
		return nil
	})

	g.Go(func() (err error) {
		defer e.recoverStep("accommodation", &err)
		stays = Accommodation(ctx, e.lodging, e.now(), t.Destination, prefs.BudgetTier)
		return nil
	})

	if e.images != nil && t.ImageURL == "" {
		g.Go(func() (err error) {
			defer e.recoverStep("image", &err)
			image = e.images.Find(ctx, t.Destination)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.log.Error("enrichment step failed", "destination", t.Destination, "err", err)
	}

	if travel == nil {
		travel = TravelOptions(ctx, nil, prefs, t.Destination)
	}
	if stays == nil {
		stays = FallbackAccommodation(t.Destination)
	}
	out.TravelOptions = travel
	out.Accommodation = stays
	if image != "" {
		out.ImageURL = image
	}

	return out
}

// recoverStep turns a panic in an enrichment step into an error so the
// remaining steps still deliver their results.
func (e *Enricher) recoverStep(step string, err *error) {
	if r := recover(); r != nil {
		e.log.Error("enrichment step panicked", "step", step, "recover", r)
		*err = fmt.Errorf("%s panicked: %v", step, r)
	}
}
