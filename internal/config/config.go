// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Generative-text providers accepted by LLM_PROVIDER.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds all configuration values for the API server.
// Provider keys are optional; an empty key selects that provider's fallback.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	BearerToken string
	LogLevel    slog.Level

	// MigrationsDir, when set, overrides the migrations embedded in the binary.
	MigrationsDir string

	LLMProvider string
	LLMModel    string // empty means the provider's default model

	AnthropicAPIKey   string
	GeminiAPIKey      string
	GoogleMapsAPIKey  string
	RapidAPIKey       string
	UnsplashAccessKey string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		BearerToken:       os.Getenv("BEARER_TOKEN"),
		MigrationsDir:     os.Getenv("MIGRATIONS_DIR"),
		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", ProviderAnthropic)),
		LLMModel:          os.Getenv("LLM_MODEL"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		RapidAPIKey:       os.Getenv("RAPIDAPI_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
	}

	var missing []string
	for key, v := range map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"REDIS_URL":    cfg.RedisURL,
		"BEARER_TOKEN": cfg.BearerToken,
	} {
		if v == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	switch cfg.LLMProvider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return Config{}, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
