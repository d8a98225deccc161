package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/quicktrip/internal/itinerary"
	"github.com/neexbeast/quicktrip/internal/storage"
	"github.com/neexbeast/quicktrip/internal/trip"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	generator TripGenerator
	repo      SavedTripRepo
	cache     SavedTripCache
	rng       itinerary.RandSource
	log       *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
// rng picks loading-screen facts and must be safe for concurrent use.
func NewHandlers(generator TripGenerator, repo SavedTripRepo, cache SavedTripCache, rng itinerary.RandSource, log *slog.Logger) *Handlers {
	return &Handlers{
		generator: generator,
		repo:      repo,
		cache:     cache,
		rng:       rng,
		log:       log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// ---- Trips ----

// GenerateTrip handles POST /api/v1/trips/generate.
// Responds with the itinerary and how it was produced; model failures still
// yield 200 with outcome "fallback".
func (h *Handlers) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	var prefs trip.Preferences
	if err := decodeBody(w, r, &prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.generator.Generate(r.Context(), prefs)
	if err != nil {
		if errors.Is(err, trip.ErrInvalidPreferences) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("generate trip failed", "origin", prefs.Location, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// RandomFact handles GET /api/v1/facts/random.
func (h *Handlers) RandomFact(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"fact": itinerary.RandomFact(h.rng)})
}

// ---- Saved trips ----

type createSavedTripRequest struct {
	Trip        trip.Trip         `json:"trip"`
	Preferences *trip.Preferences `json:"preferences,omitempty"`
}

type updateStatusRequest struct {
	Status trip.Status `json:"status"`
}

// ListSavedTrips handles GET /api/v1/saved-trips?filter=.
func (h *Handlers) ListSavedTrips(w http.ResponseWriter, r *http.Request) {
	f, err := storage.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trips, err := h.repo.ListSavedTrips(r.Context(), f)
	if err != nil {
		h.log.Error("list saved trips failed", "filter", f, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if trips == nil {
		trips = []*trip.SavedTrip{}
	}

	writeJSON(w, http.StatusOK, trips)
}

// CreateSavedTrip handles POST /api/v1/saved-trips.
func (h *Handlers) CreateSavedTrip(w http.ResponseWriter, r *http.Request) {
	var req createSavedTripRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Trip.Destination == "" {
		writeError(w, http.StatusBadRequest, "trip destination is required")
		return
	}

	st, err := h.repo.SaveTrip(r.Context(), req.Trip, req.Preferences)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadySaved) {
			writeError(w, http.StatusConflict, "trip already saved")
			return
		}
		h.log.Error("save trip failed", "destination", req.Trip.Destination, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to save trip")
		return
	}

	if err := h.cache.Set(r.Context(), st); err != nil {
		h.log.Warn("cache set failed after save", "id", st.ID, "err", err)
	}

	writeJSON(w, http.StatusCreated, st)
}

// GetSavedTrip handles GET /api/v1/saved-trips/{id}.
// Cache hit → return. DB hit → cache + return. Neither → 404.
func (h *Handlers) GetSavedTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cached, err := h.cache.Get(r.Context(), id)
	if err != nil {
		h.log.Error("cache get failed", "id", id, "err", err)
	}
	if cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	st, err := h.repo.GetSavedTrip(r.Context(), id)
	if err != nil {
		h.log.Error("db get failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if st == nil {
		writeError(w, http.StatusNotFound, "saved trip not found")
		return
	}

	if err := h.cache.Set(r.Context(), st); err != nil {
		h.log.Warn("cache set failed after db hit", "id", id, "err", err)
	}

	writeJSON(w, http.StatusOK, st)
}

// UpdateStatus handles PATCH /api/v1/saved-trips/{id}/status.
func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "status must be explored or bucket")
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "saved trip not found")
			return
		}
		h.log.Error("update status failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to update trip")
		return
	}

	h.invalidate(r.Context(), id)

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(req.Status)})
}

// DeleteSavedTrip handles DELETE /api/v1/saved-trips/{id}.
func (h *Handlers) DeleteSavedTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.DeleteSavedTrip(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "saved trip not found")
			return
		}
		h.log.Error("delete saved trip failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to delete trip")
		return
	}

	h.invalidate(r.Context(), id)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) invalidate(ctx context.Context, id string) {
	if err := h.cache.Delete(ctx, id); err != nil {
		h.log.Warn("cache delete failed", "id", id, "err", err)
	}
}

// ---- Health ----

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
// Returns 200 if both respond, 503 otherwise.
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
