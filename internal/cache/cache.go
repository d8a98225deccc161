// Package cache keeps recently read saved trips in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/quicktrip/internal/trip"
)

const (
	defaultTTL = time.Hour
	keyPrefix  = "saved_trip:"
)

// Connect parses redisURL, creates a client, and verifies connectivity with a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// Cache stores saved trips as JSON keyed by id.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 1-hour TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

func key(id string) string {
	return keyPrefix + id
}

// Get returns the cached saved trip.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, id string) (*trip.SavedTrip, error) {
	val, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for saved trip %s: %w", id, err)
	}

	var st trip.SavedTrip
	if err := json.Unmarshal(val, &st); err != nil {
		return nil, fmt.Errorf("unmarshaling cached saved trip %s: %w", id, err)
	}

	return &st, nil
}

// Set stores st under its id with the configured TTL. A nil trip is ignored.
func (c *Cache) Set(ctx context.Context, st *trip.SavedTrip) error {
	if st == nil {
		return nil
	}

	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling saved trip %s: %w", st.ID, err)
	}

	if err := c.client.Set(ctx, key(st.ID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for saved trip %s: %w", st.ID, err)
	}

	return nil
}

// Delete removes the cached entry for id.
func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete for saved trip %s: %w", id, err)
	}
	return nil
}
