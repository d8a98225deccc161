// Package itinerary turns traveller preferences into an enriched trip, asking
// a generative-text model first and falling back to canned itineraries.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/neexbeast/quicktrip/internal/provider"
	"github.com/neexbeast/quicktrip/internal/trip"
)

// TextGenerator completes a prompt. Implemented by provider.AnthropicClient
// and provider.GeminiClient.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Enricher decorates a base trip. Implemented by *enrich.Enricher.
type Enricher interface {
	Enrich(ctx context.Context, prefs trip.Preferences, t trip.Trip) trip.Trip
}

// Outcome says which path produced a trip.
type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeFallback  Outcome = "fallback"
)

// Reason explains why the fallback path was taken.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoCredential  Reason = "no_credential"
	ReasonProviderError Reason = "provider_error"
	ReasonNoJSON        Reason = "no_json"
	ReasonInvalidTrip   Reason = "invalid_trip"
)

// Result is a generated trip and how it was produced.
type Result struct {
	Outcome Outcome   `json:"outcome"`
	Reason  Reason    `json:"reason,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	Trip    trip.Trip `json:"trip"`
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrompt replaces BuildPrompt.
func WithPrompt(build func(trip.Preferences) string) Option {
	return func(g *Generator) { g.prompt = build }
}

// Generator produces trips.
type Generator struct {
	llm      TextGenerator
	enricher Enricher
	prompt   func(trip.Preferences) string
	log      *slog.Logger
}

// NewGenerator constructs a Generator. A nil llm means no model is configured
// and every trip comes from MockTrip. A nil enricher skips enrichment.
func NewGenerator(llm TextGenerator, enricher Enricher, log *slog.Logger, opts ...Option) *Generator {
	if log == nil {
		log = slog.Default()
	}
	g := &Generator{llm: llm, enricher: enricher, prompt: BuildPrompt, log: log}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates prefs and returns an enriched trip. Only invalid
// preferences produce an error; any model failure falls back to MockTrip and
// is reported through Result.Outcome and Result.Reason.
func (g *Generator) Generate(ctx context.Context, prefs trip.Preferences) (Result, error) {
	if err := prefs.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Outcome: OutcomeGenerated}
	base, err := g.fromModel(ctx, prefs)
	if err != nil {
		res.Outcome = OutcomeFallback
		res.Reason = reasonFor(err)
		if !errors.Is(err, errNoModel) {
			res.Detail = err.Error()
			g.log.Warn("trip generation failed, using mock", "origin", prefs.Location, "reason", res.Reason, "err", err)
		}
		base = MockTrip(prefs.Location)
	}

	if g.enricher != nil {
		base = g.enricher.Enrich(ctx, prefs, base)
	}
	res.Trip = base

	return res, nil
}

var errNoModel = errors.New("no generative model configured")

func (g *Generator) fromModel(ctx context.Context, prefs trip.Preferences) (trip.Trip, error) {
	if g.llm == nil {
		return trip.Trip{}, errNoModel
	}

	text, err := g.llm.Generate(ctx, g.prompt(prefs))
	if err != nil {
		return trip.Trip{}, fmt.Errorf("generating itinerary: %w", err)
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return trip.Trip{}, err
	}

	return ParseTrip(raw)
}

func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, errNoModel), errors.Is(err, provider.ErrUnavailable):
		return ReasonNoCredential
	case errors.Is(err, ErrNoJSON):
		return ReasonNoJSON
	case errors.Is(err, ErrInvalidTrip):
		return ReasonInvalidTrip
	default:
		return ReasonProviderError
	}
}
