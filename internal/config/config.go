// ABOUTME: Configuration loader for the admin console
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// API
	APIURL         string
	RequestTimeout int // seconds, default 10

	// Catalog
	PageSize        int // default page size for product listings (default 10)
	WorkingSetLimit int // max rows fetched for client-side filtering (default 1000)
	CacheTTL        int // seconds, dashboard working-set cache (default 30)
}

// DefaultAPIURL is the production catalog endpoint used when nothing else
// is configured
const DefaultAPIURL = "https://api-teste-front-production.up.railway.app"

// Defaults returns the built-in configuration used when the environment
// carries invalid values
func Defaults() *Config {
	return &Config{
		APIURL:          DefaultAPIURL,
		RequestTimeout:  10,
		PageSize:        10,
		WorkingSetLimit: 1000,
		CacheTTL:        30,
	}
}

func Load() (*Config, error) {
	// Best-effort .env load; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:         ensureScheme(getEnv("AGENUS_API_URL", DefaultAPIURL)),
		RequestTimeout: getEnvInt("AGENUS_TIMEOUT", 10),

		PageSize:        getEnvInt("AGENUS_PAGE_SIZE", 10),
		WorkingSetLimit: getEnvInt("AGENUS_WORKING_SET_LIMIT", 1000),
		CacheTTL:        getEnvInt("AGENUS_CACHE_TTL", 30),
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("AGENUS_API_URL is required")
	}
	if cfg.RequestTimeout < 1 {
		return nil, fmt.Errorf("AGENUS_TIMEOUT must be at least 1 second, got %d", cfg.RequestTimeout)
	}
	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		return nil, fmt.Errorf("AGENUS_PAGE_SIZE must be between 1 and 100, got %d", cfg.PageSize)
	}
	if cfg.WorkingSetLimit < 1 || cfg.WorkingSetLimit > 1000 {
		return nil, fmt.Errorf("AGENUS_WORKING_SET_LIMIT must be between 1 and 1000, got %d", cfg.WorkingSetLimit)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}
