package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults point at the villa's public booking sheet export.
const (
	defaultSheetBaseURL = "https://docs.google.com/spreadsheets/d/1Mfzx0rbOe6lr9SVC_VxpS7ZVhudu_zIjKR384tYpU8U/export?format=csv&gid="
	defaultSheetGIDs    = "2025:1279501681"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env            string
	HTTPAddr       string
	SheetBaseURL   string
	SheetGIDs      map[string]string
	PricingPolicy  string
	FetchTimeout   time.Duration
	FetchRetries   uint64
	SheetCacheTTL  time.Duration
	WhatsAppNumber string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:            getEnv("APP_ENV", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		SheetBaseURL:   getEnv("SHEET_BASE_URL", defaultSheetBaseURL),
		PricingPolicy:  strings.ToLower(getEnv("PRICING_POLICY", "stepped")),
		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
	}

	gids, err := parseGIDs(getEnv("SHEET_GIDS", defaultSheetGIDs))
	if err != nil {
		return Config{}, err
	}
	cfg.SheetGIDs = gids

	timeout, err := parseDurationEnv("FETCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.FetchTimeout = timeout

	ttl, err := parseDurationEnv("SHEET_CACHE_TTL", time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.SheetCacheTTL = ttl

	retries, err := parseUintEnv("FETCH_RETRIES", 2)
	if err != nil {
		return Config{}, err
	}
	cfg.FetchRetries = retries

	switch cfg.PricingPolicy {
	case "stepped", "promo":
	default:
		return Config{}, fmt.Errorf("invalid PRICING_POLICY: %q", cfg.PricingPolicy)
	}
	if cfg.SheetBaseURL == "" {
		return Config{}, fmt.Errorf("SHEET_BASE_URL is required")
	}
	if len(cfg.SheetGIDs) == 0 {
		return Config{}, fmt.Errorf("SHEET_GIDS is required")
	}
	return cfg, nil
}

// parseGIDs reads a comma list of year:gid pairs.
func parseGIDs(raw string) (map[string]string, error) {
	gids := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		year, gid, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(year) == "" || strings.TrimSpace(gid) == "" {
			return nil, fmt.Errorf("invalid SHEET_GIDS component %q", pair)
		}
		gids[strings.TrimSpace(year)] = strings.TrimSpace(gid)
	}
	return gids, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseUintEnv(key string, def uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %w", key, err)
	}
	return n, nil
}
