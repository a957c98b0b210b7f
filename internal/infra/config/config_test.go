package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "stepped", cfg.PricingPolicy)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, time.Minute, cfg.SheetCacheTTL)
	assert.Equal(t, uint64(2), cfg.FetchRetries)
	assert.Equal(t, map[string]string{"2025": "1279501681"}, cfg.SheetGIDs)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PRICING_POLICY", "PROMO")
	t.Setenv("SHEET_GIDS", "2025:111, 2026:222")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("FETCH_RETRIES", "5")
	t.Setenv("WHATSAPP_NUMBER", "+972533920842")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "promo", cfg.PricingPolicy)
	assert.Equal(t, map[string]string{"2025": "111", "2026": "222"}, cfg.SheetGIDs)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, uint64(5), cfg.FetchRetries)
	assert.Equal(t, "+972533920842", cfg.WhatsAppNumber)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown policy", key: "PRICING_POLICY", value: "dynamic"},
		{name: "malformed gids", key: "SHEET_GIDS", value: "2025"},
		{name: "bad duration", key: "FETCH_TIMEOUT", value: "fast"},
		{name: "bad retries", key: "FETCH_RETRIES", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
