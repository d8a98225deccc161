package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/quicktrip/internal/trip"
)

var (
	// ErrNotFound is returned when a saved trip does not exist.
	ErrNotFound = errors.New("saved trip not found")
	// ErrAlreadySaved is returned when a trip with the same destination and
	// subtitle is already saved.
	ErrAlreadySaved = errors.New("trip already saved")
	// ErrUnknownFilter is returned for a filter name that is not one of the
	// Filter constants.
	ErrUnknownFilter = errors.New("unknown filter")
)

// Filter selects a subset of saved trips.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterExplored Filter = "explored"
	FilterBucket   Filter = "bucket"
	FilterBudget   Filter = "budget" // cost range mentions "free" or "£0"
)

// ParseFilter maps a query value to a Filter. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterExplored, FilterBucket, FilterBudget:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for saved trips.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

const savedTripColumns = `id, status, trip, preferences, saved_at`

// SaveTrip stores t on the bucket list. A trip with the same destination and
// subtitle as an existing one yields ErrAlreadySaved.
func (r *Repository) SaveTrip(ctx context.Context, t trip.Trip, prefs *trip.Preferences) (*trip.SavedTrip, error) {
	t = t.Normalize()
	tripJSON, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshaling trip %s: %w", t.Destination, err)
	}

	var prefsJSON []byte
	if prefs != nil {
		if prefsJSON, err = json.Marshal(prefs); err != nil {
			return nil, fmt.Errorf("marshaling preferences for %s: %w", t.Destination, err)
		}
	}

	const q = `
		INSERT INTO saved_trips (id, destination, subtitle, status, trip, preferences, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (destination, subtitle) DO NOTHING
		RETURNING saved_at
	`

	id := uuid.New()
	var savedAt time.Time
	err = r.q.QueryRow(ctx, q, id.String(), t.Destination, t.Subtitle, string(trip.StatusBucket), tripJSON, prefsJSON).Scan(&savedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlreadySaved
		}
		return nil, fmt.Errorf("inserting saved trip %s: %w", t.Destination, err)
	}

	return &trip.SavedTrip{
		Trip:        t,
		ID:          id.String(),
		SavedDate:   savedAt,
		Status:      trip.StatusBucket,
		Preferences: prefs,
	}, nil
}

// GetSavedTrip retrieves a saved trip by id.
// Returns nil, nil when no trip has that id.
func (r *Repository) GetSavedTrip(ctx context.Context, id string) (*trip.SavedTrip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	q := `SELECT ` + savedTripColumns + ` FROM saved_trips WHERE id = $1`

	var (
		st        trip.SavedTrip
		status    string
		tripJSON  []byte
		prefsJSON []byte
	)
	err := r.q.QueryRow(ctx, q, id).Scan(&st.ID, &status, &tripJSON, &prefsJSON, &st.SavedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying saved trip %s: %w", id, err)
	}

	if err := decodeSavedTrip(&st, status, tripJSON, prefsJSON); err != nil {
		return nil, fmt.Errorf("decoding saved trip %s: %w", id, err)
	}

	return &st, nil
}

// ListSavedTrips returns the saved trips matching f, newest first.
func (r *Repository) ListSavedTrips(ctx context.Context, f Filter) ([]*trip.SavedTrip, error) {
	q := `SELECT ` + savedTripColumns + ` FROM saved_trips`
	var args []any

	switch f {
	case FilterAll, "":
	case FilterExplored, FilterBucket:
		q += ` WHERE status = $1`
		args = append(args, string(f))
	case FilterBudget:
		q += ` WHERE trip->>'costRange' ILIKE '%free%' OR trip->>'costRange' LIKE '%£0%'`
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, f)
	}
	q += ` ORDER BY saved_at DESC`

	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying saved trips (%s): %w", f, err)
	}
	defer rows.Close()

	var results []*trip.SavedTrip
	for rows.Next() {
		var (
			st        trip.SavedTrip
			status    string
			tripJSON  []byte
			prefsJSON []byte
		)
		if err := rows.Scan(&st.ID, &status, &tripJSON, &prefsJSON, &st.SavedDate); err != nil {
			return nil, fmt.Errorf("scanning saved trip row: %w", err)
		}

		if err := decodeSavedTrip(&st, status, tripJSON, prefsJSON); err != nil {
			return nil, fmt.Errorf("decoding saved trip %s: %w", st.ID, err)
		}
		results = append(results, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved trip rows: %w", err)
	}

	return results, nil
}

// UpdateStatus moves a saved trip between explored and bucket.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status trip.Status) error {
	if !status.Valid() {
		return fmt.Errorf("updating saved trip %s: unknown status %q", id, status)
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	const q = `
		UPDATE saved_trips
		SET status = $2
		WHERE id = $1
	`

	tag, err := r.q.Exec(ctx, q, id, string(status))
	if err != nil {
		return fmt.Errorf("updating status of saved trip %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteSavedTrip removes a saved trip.
func (r *Repository) DeleteSavedTrip(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.q.Exec(ctx, `DELETE FROM saved_trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting saved trip %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func decodeSavedTrip(st *trip.SavedTrip, status string, tripJSON, prefsJSON []byte) error {
	if err := json.Unmarshal(tripJSON, &st.Trip); err != nil {
		return fmt.Errorf("unmarshaling trip: %w", err)
	}
	st.Status = trip.Status(status)

	if len(prefsJSON) > 0 {
		var p trip.Preferences
		if err := json.Unmarshal(prefsJSON, &p); err != nil {
			return fmt.Errorf("unmarshaling preferences: %w", err)
		}
		st.Preferences = &p
	}

	return nil
}
