// Package config loads the meal planner's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultJWTSecret        = "your-secret-key-change-in-production"
	defaultJWTRefreshSecret = "your-refresh-secret-key-change-in-production"
)

// localOrigins are always allowed so a dev frontend works out of the box.
var localOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Seed     SeedConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	// RateLimit requests per RateWindow per client; zero disables limiting.
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	// RequestTimeout bounds each API request; zero disables the deadline.
	RequestTimeout time.Duration
	// IdempotencyTTL is how long a write answered under an Idempotency-Key can be replayed.
	IdempotencyTTL time.Duration
}

// CacheConfig sizes the ingredient name cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type AuthConfig struct {
	Enabled          bool
	APIKeys          map[string]bool
	JWTSecretKey     string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// SeedConfig controls the ingredient catalog import.
type SeedConfig struct {
	Ingredients bool
	// File overrides the embedded catalog when set.
	File string
}

// LogConfig selects the zerolog level and console output.
type LogConfig struct {
	Level string
	// Pretty writes human readable lines instead of JSON.
	Pretty bool
}

// Load reads the configuration from environment variables. Unset or
// unparsable variables fall back to their defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 10*time.Minute),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:          getEnvBool("AUTH_ENABLED", false),
			APIKeys:          parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:     getEnv("JWT_SECRET_KEY", defaultJWTSecret),
			JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET_KEY", defaultJWTRefreshSecret),
			AccessTokenTTL:   getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTokenTTL:  getEnvDuration("JWT_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "meal_planner"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Seed: SeedConfig{
			Ingredients: getEnvBool("SEED_INGREDIENTS", false),
			File:        getEnv("SEED_INGREDIENTS_FILE", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", zerolog.LevelInfoValue)),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Validate reports every setting that would make the server misbehave.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Server.Port != "", "PORT must be set")
	check(c.Server.RateLimit >= 0, "RATE_LIMIT must not be negative, got %d", c.Server.RateLimit)
	check(c.Server.RateLimit == 0 || c.Server.RateWindow > 0, "RATE_WINDOW must be positive when rate limiting is on")
	check(c.Server.RequestTimeout >= 0, "REQUEST_TIMEOUT must not be negative")
	check(c.Cache.Size >= 0, "CACHE_SIZE must not be negative, got %d", c.Cache.Size)
	check(c.Auth.AccessTokenTTL > 0, "JWT_ACCESS_TOKEN_TTL must be positive")
	check(c.Auth.RefreshTokenTTL > c.Auth.AccessTokenTTL, "JWT_REFRESH_TOKEN_TTL must exceed JWT_ACCESS_TOKEN_TTL")
	check(c.Auth.JWTSecretKey != c.Auth.JWTRefreshSecret, "JWT_SECRET_KEY and JWT_REFRESH_SECRET_KEY must differ")
	_, err := zerolog.ParseLevel(c.Log.Level)
	check(err == nil, "LOG_LEVEL %q is not a zerolog level", c.Log.Level)
	if c.Database.Enabled {
		check(c.Database.URI != "", "MONGODB_URI must be set when MONGODB_ENABLED is true")
		check(c.Database.DatabaseName != "", "MONGODB_DATABASE must be set when MONGODB_ENABLED is true")
		check(c.Database.CircuitBreakerFailureThreshold > 0, "CIRCUIT_BREAKER_FAILURE_THRESHOLD must be positive")
		check(c.Database.CircuitBreakerSuccessThreshold > 0, "CIRCUIT_BREAKER_SUCCESS_THRESHOLD must be positive")
	}
	return errors.Join(errs...)
}

// UsesDefaultSecrets reports whether either JWT secret is still the shipped placeholder.
func (a AuthConfig) UsesDefaultSecrets() bool {
	return a.JWTSecretKey == defaultJWTSecret || a.JWTRefreshSecret == defaultJWTRefreshSecret
}

func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getEnv(key, fallback string) string {
	return lookupEnv(key, fallback, func(s string) (string, error) { return s, nil })
}

func getEnvInt(key string, fallback int) int {
	return lookupEnv(key, fallback, strconv.Atoi)
}

func getEnvBool(key string, fallback bool) bool {
	return lookupEnv(key, fallback, strconv.ParseBool)
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	return lookupEnv(key, fallback, time.ParseDuration)
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseAPIKeys(s string) map[string]bool {
	items := splitList(s)
	if len(items) == 0 {
		return nil
	}
	keys := make(map[string]bool, len(items))
	for _, k := range items {
		keys[k] = true
	}
	return keys
}

func parseCORSOrigins(s string) []string {
	origins := append([]string(nil), localOrigins...)
	return append(origins, splitList(s)...)
}
