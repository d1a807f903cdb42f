package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the process needs from its environment.
type AppConfig struct {
	Port string

	// DataDir is where collection documents are persisted. Empty means
	// in-memory only (data is lost on restart).
	DataDir string

	OpenWeatherAPIKey string

	// GeocoderAPIKey enables reverse geocoding of location names. Optional.
	GeocoderAPIKey string

	// FetchInterval controls how often saved locations get their conditions
	// refreshed.
	FetchInterval time.Duration

	// SnapshotMaxAge bounds how stale a cached conditions snapshot may be
	// before it is treated as absent (0 = never expires).
	SnapshotMaxAge time.Duration

	// HTTPTimeout applies to outbound provider calls.
	HTTPTimeout time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DataDir = os.Getenv("DATA_DIR")
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	interval, err := time.ParseDuration(getenvDefault("FETCH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	maxAge, err := time.ParseDuration(getenvDefault("SNAPSHOT_MAX_AGE", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_MAX_AGE: %w", err)
	}
	cfg.SnapshotMaxAge = maxAge

	timeoutSec := getenvInt("HTTP_TIMEOUT_SECONDS", 10)
	cfg.HTTPTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
