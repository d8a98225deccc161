package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/quicktrip/internal/api"
	"github.com/neexbeast/quicktrip/internal/cache"
	"github.com/neexbeast/quicktrip/internal/config"
	"github.com/neexbeast/quicktrip/internal/enrich"
	"github.com/neexbeast/quicktrip/internal/itinerary"
	"github.com/neexbeast/quicktrip/internal/provider"
	"github.com/neexbeast/quicktrip/internal/storage"
	"github.com/neexbeast/quicktrip/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// Connect to PostgreSQL.
	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	// Run migrations.
	var migrationFS fs.FS = migrations.FS
	if cfg.MigrationsDir != "" {
		migrationFS = os.DirFS(cfg.MigrationsDir)
	}
	if err := storage.RunMigrations(ctx, pool, migrationFS); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied")

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Wire the itinerary pipeline.
	llm, closeLLM, err := newTextGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("configuring %s: %w", cfg.LLMProvider, err)
	}
	defer closeLLM()
	if llm == nil {
		log.Warn("no model credential configured, serving canned itineraries", "provider", cfg.LLMProvider)
	}

	// Steps without a credential use their fallbacks.
	var router enrich.Router
	if cfg.GoogleMapsAPIKey != "" {
		directions, err := provider.NewDirectionsClient(cfg.GoogleMapsAPIKey)
		if err != nil {
			return fmt.Errorf("configuring directions: %w", err)
		}
		router = directions
	}

	var lodging enrich.LodgingSearcher
	if cfg.RapidAPIKey != "" {
		lodging = provider.NewLodgingClient(cfg.RapidAPIKey)
	}

	rng := newLockedRand()
	var photos enrich.PhotoSearcher
	if cfg.UnsplashAccessKey != "" {
		photos = provider.NewPhotoClient(cfg.UnsplashAccessKey)
	}
	images := enrich.NewImageFinder(photos, rng)

	enricher := enrich.NewEnricher(router, lodging, images, log)
	generator := itinerary.NewGenerator(llm, enricher, log)

	// Wire HTTP.
	repo := storage.NewRepository(pool)
	cacheLayer := cache.NewCache(redisClient)
	handlers := api.NewHandlers(generator, repo, cacheLayer, rng, log)

	dbPinger := &pgxPoolPinger{pool: pool}
	redisPinger := &redisPingerAdapter{client: redisClient}

	mux := api.NewRouter(handlers, cfg.BearerToken, dbPinger, redisPinger, log)

	// Generation waits on the model and then on enrichment.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port, "llm_provider", cfg.LLMProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// newTextGenerator builds the configured model client. It returns a nil
// generator when the provider has no credential.
func newTextGenerator(ctx context.Context, cfg config.Config) (itinerary.TextGenerator, func(), error) {
	noop := func() {}

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, noop, nil
		}
		c, err := provider.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, itinerary.MaxOutputTokens)
		if err != nil {
			return nil, noop, err
		}
		return c, func() { _ = c.Close() }, nil
	default:
		if cfg.AnthropicAPIKey == "" {
			return nil, noop, nil
		}
		return provider.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel, itinerary.MaxOutputTokens), noop, nil
	}
}

// lockedRand is a *rand.Rand shared between request goroutines.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand() *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

// pgxPoolPinger adapts pgxpool.Pool to the api.dbPinger interface.
type pgxPoolPinger struct {
	pool interface {
		Ping(ctx context.Context) error
	}
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to the api.redisPinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
